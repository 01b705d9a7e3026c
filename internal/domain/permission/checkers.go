package permission

import (
	"context"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
)

// Checkers builds the leaf predicates. Structural checkers (is this user
// the case manager for this case, a QA slot holder on this task) resolve
// through the assignment repository; role and status checkers read the
// loaded aggregates directly.
type Checkers struct {
	assignments assignment.Repository
	tasks       task.Repository
}

// NewCheckers creates the leaf checker factory.
func NewCheckers(assignments assignment.Repository, tasks task.Repository) *Checkers {
	return &Checkers{assignments: assignments, tasks: tasks}
}

// Admin is satisfied for users holding the administrator role. It leads
// nearly every Or clause in the rule table; the sole exception is the
// authorise action, which only the case's named authoriser may perform.
func (c *Checkers) Admin() Checker {
	return c.ActiveRole(uservo.RoleAdministrator)
}

// ActiveRole is satisfied when the actor's newest toggle entry for the role
// is a grant.
func (c *Checkers) ActiveRole(role uservo.Role) Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return actor.HasActiveRole(role), nil
	})
}

// AnyGlobalRole is satisfied when the actor holds any active role. Used for
// visibility of non-private objects.
func (c *Checkers) AnyGlobalRole() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return len(actor.ActiveRoles()) > 0, nil
	})
}

// holdsAnyCaseRole resolves slot membership on the ref's case.
func (c *Checkers) holdsAnyCaseRole(ctx context.Context, actor *user.User, ref Ref, roles ...assignvo.Role) (bool, error) {
	if ref.Case == nil || ref.Case.ID() == 0 {
		return false, nil
	}
	for _, role := range roles {
		ok, err := c.assignments.HoldsRole(ctx, assignvo.KindCase, ref.Case.ID(), role, actor.ID())
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// holdsAnyTaskRole resolves slot membership on the ref's task.
func (c *Checkers) holdsAnyTaskRole(ctx context.Context, actor *user.User, ref Ref, roles ...assignvo.Role) (bool, error) {
	if ref.Task == nil || ref.Task.ID() == 0 {
		return false, nil
	}
	for _, role := range roles {
		ok, err := c.assignments.HoldsRole(ctx, assignvo.KindTask, ref.Task.ID(), role, actor.ID())
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// CaseManagerForCase is satisfied when the actor holds either case manager
// slot on the ref's case (the parent case, for task and evidence refs).
func (c *Checkers) CaseManagerForCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return c.holdsAnyCaseRole(ctx, actor, ref,
			assignvo.RolePrincipalCaseManager, assignvo.RoleSecondaryCaseManager)
	})
}

// RequesterForCase is satisfied when the actor holds the requester slot.
func (c *Checkers) RequesterForCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return c.holdsAnyCaseRole(ctx, actor, ref, assignvo.RoleRequester)
	})
}

// AuthoriserForCase is satisfied when the actor holds the authoriser slot.
func (c *Checkers) AuthoriserForCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return c.holdsAnyCaseRole(ctx, actor, ref, assignvo.RoleAuthoriser)
	})
}

// InvestigatorForTask is satisfied when the actor holds either investigator
// slot on the ref's task.
func (c *Checkers) InvestigatorForTask() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return c.holdsAnyTaskRole(ctx, actor, ref,
			assignvo.RolePrincipalInvestigator, assignvo.RoleSecondaryInvestigator)
	})
}

// QAForTask is satisfied when the actor holds either QA slot on the ref's
// task.
func (c *Checkers) QAForTask() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return c.holdsAnyTaskRole(ctx, actor, ref,
			assignvo.RolePrincipalQA, assignvo.RoleSecondaryQA)
	})
}

// AssignedToTask is satisfied when the actor holds any slot on the ref's
// task.
func (c *Checkers) AssignedToTask() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		if ref.Task == nil || ref.Task.ID() == 0 {
			return false, nil
		}
		return c.assignments.IsAssigned(ctx, assignvo.KindTask, ref.Task.ID(), actor.ID())
	})
}

// AssignedToCase is satisfied when the actor holds any slot on the ref's
// case directly, or any slot on one of its tasks. Private visibility rests
// on this: direct assignment grants access regardless of global role.
func (c *Checkers) AssignedToCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		if ref.Case == nil || ref.Case.ID() == 0 {
			return false, nil
		}
		ok, err := c.assignments.IsAssigned(ctx, assignvo.KindCase, ref.Case.ID(), actor.ID())
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}

		tasks, err := c.tasks.ListByCase(ctx, ref.Case.ID())
		if err != nil {
			return false, err
		}
		for _, t := range tasks {
			ok, err := c.assignments.IsAssigned(ctx, assignvo.KindTask, t.ID(), actor.ID())
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	})
}

// PrivateCase is satisfied when the ref's case is marked private. Evidence
// with no case is never private.
func (c *Checkers) PrivateCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Case != nil && ref.Case.IsPrivate(), nil
	})
}

// ArchivedCase is satisfied when the ref's case is archived.
func (c *Checkers) ArchivedCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Case != nil && ref.Case.Status().IsArchived(), nil
	})
}

// RejectedCase is satisfied when the ref's case was refused authorisation.
func (c *Checkers) RejectedCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Case != nil && ref.Case.Status().IsRejected(), nil
	})
}

// PendingCase is satisfied while the ref's case awaits authorisation.
func (c *Checkers) PendingCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Case != nil && ref.Case.Status().IsPending(), nil
	})
}

// ApprovedCase is satisfied once the ref's case has passed authorisation.
func (c *Checkers) ApprovedCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Case != nil && ref.Case.Status().IsApproved(), nil
	})
}

// ClosedCase is satisfied when the ref's case is closed or archived.
func (c *Checkers) ClosedCase() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Case != nil && ref.Case.Status().IsClosed(), nil
	})
}

// ParentCaseEditable gates edits on tasks and evidence transitively: the
// parent case must be neither archived nor rejected. Unassociated evidence
// has no parent gate.
func (c *Checkers) ParentCaseEditable() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		if ref.Case == nil {
			return true, nil
		}
		status := ref.Case.Status()
		return !status.IsArchived() && !status.IsRejected(), nil
	})
}

// NotStartedTask is satisfied while work on the ref's task has yet to
// begin.
func (c *Checkers) NotStartedTask() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Task != nil && ref.Task.Status().IsNotStarted(), nil
	})
}

// NotesAllowed is satisfied in the task statuses that accept progress
// notes.
func (c *Checkers) NotesAllowed() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.Task != nil && ref.Task.Status().AllowsNotes(), nil
	})
}

// Self is satisfied when the ref's user is the actor.
func (c *Checkers) Self() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		return ref.User != nil && ref.User.ID() == actor.ID(), nil
	})
}

// ManagerOfUser is satisfied when the actor manages the ref's user.
func (c *Checkers) ManagerOfUser() Checker {
	return CheckerFunc(func(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
		if ref.User == nil || ref.User.ManagerID() == nil {
			return false, nil
		}
		return *ref.User.ManagerID() == actor.ID(), nil
	})
}
