package email

import (
	"context"
	"fmt"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/logger"
)

// Sender is the outbound mail dependency of the notifier.
type Sender interface {
	Send(to, subject, body string) error
}

// Notifier turns domain events into emails. Everything except the
// retention reminder is sent asynchronously: usecases fire and forget, so
// delivery failures are logged here and nowhere else. The retention
// reminder is synchronous because the sweep must not mark a reminder sent
// when delivery failed.
type Notifier struct {
	sender      Sender
	userRepo    user.Repository
	assignments assignment.Repository
	logger      logger.Interface
}

func NewNotifier(
	sender Sender,
	userRepo user.Repository,
	assignments assignment.Repository,
	logger logger.Interface,
) *Notifier {
	return &Notifier{
		sender:      sender,
		userRepo:    userRepo,
		assignments: assignments,
		logger:      logger.Named("notifier"),
	}
}

func (n *Notifier) CaseStatusChanged(ctx context.Context, c *casefile.Case, actorID uint) {
	subject := fmt.Sprintf("Case %q is now %s", c.Name(), c.Status())
	body := fmt.Sprintf("The status of case %q changed to %s.", c.Name(), c.Status())
	go n.sendToObjectHolders(assignvo.KindCase, c.ID(), subject, body)
}

func (n *Notifier) CaseAuthorisationDecided(ctx context.Context, c *casefile.Case, granted bool) {
	decision := "refused"
	if granted {
		decision = "granted"
	}
	subject := fmt.Sprintf("Authorisation %s for case %q", decision, c.Name())
	body := fmt.Sprintf("Authorisation for case %q has been %s.", c.Name(), decision)
	go n.sendToSlotHolder(assignvo.KindCase, c.ID(), assignvo.RoleRequester, subject, body)
}

func (n *Notifier) CaseRoleAssigned(ctx context.Context, c *casefile.Case, role string, userID uint) {
	subject := fmt.Sprintf("You have been assigned to case %q", c.Name())
	body := fmt.Sprintf("You now hold the %s role on case %q.", role, c.Name())
	go n.sendToUser(userID, subject, body)
}

func (n *Notifier) TaskStatusChanged(ctx context.Context, t *task.Task, actorID uint) {
	subject := fmt.Sprintf("Task %q is now %s", t.Name(), t.Status())
	body := fmt.Sprintf("The status of task %q changed to %s.", t.Name(), t.Status())
	go n.sendToObjectHolders(assignvo.KindTask, t.ID(), subject, body)
}

func (n *Notifier) TaskRoleAssigned(ctx context.Context, t *task.Task, role string, userID uint) {
	subject := fmt.Sprintf("You have been assigned to task %q", t.Name())
	body := fmt.Sprintf("You now hold the %s role on task %q.", role, t.Name())
	go n.sendToUser(userID, subject, body)
}

func (n *Notifier) EvidenceStatusChanged(ctx context.Context, e *evidence.Evidence, actorID uint) {
	subject := fmt.Sprintf("Evidence %s is now %s", e.Reference(), e.Status())
	body := fmt.Sprintf("The status of evidence %s (%s) changed to %s.",
		e.Reference(), e.Description(), e.Status())
	if e.CaseID() != nil {
		go n.sendToObjectHolders(assignvo.KindCase, *e.CaseID(), subject, body)
	}
}

// RetentionReminder emails every administrator that the retention period
// for archived evidence has elapsed. Any delivery failure is returned so
// the sweep retries on its next run.
func (n *Notifier) RetentionReminder(ctx context.Context, e *evidence.Evidence) error {
	admins, err := n.userRepo.ListByActiveRole(ctx, uservo.RoleAdministrator)
	if err != nil {
		return fmt.Errorf("failed to resolve administrators: %w", err)
	}
	if len(admins) == 0 {
		return fmt.Errorf("no administrators to notify")
	}

	subject := fmt.Sprintf("Retention period elapsed for evidence %s", e.Reference())
	body := fmt.Sprintf(
		"The retention period for archived evidence %s (%s) has elapsed. Review it for destruction.",
		e.Reference(), e.Description())

	for _, admin := range admins {
		if err := n.sender.Send(admin.Email(), subject, body); err != nil {
			return err
		}
	}
	return nil
}

func (n *Notifier) RoleChanged(ctx context.Context, u *user.User, role string, granted bool) {
	verb := "revoked from"
	if granted {
		verb = "granted to"
	}
	subject := fmt.Sprintf("Your %s role has changed", role)
	body := fmt.Sprintf("The %s role has been %s your account.", role, verb)
	go func() {
		if err := n.sender.Send(u.Email(), subject, body); err != nil {
			n.logger.Warnw("failed to send role change email", "user_id", u.ID(), "error", err)
		}
	}()
}

// sendToObjectHolders mails every active slot holder on the object, once
// per distinct user.
func (n *Notifier) sendToObjectHolders(kind assignvo.Kind, objectID uint, subject, body string) {
	ctx := context.Background()
	holders, err := n.assignments.HoldersFor(ctx, kind, objectID)
	if err != nil {
		n.logger.Warnw("failed to resolve notification recipients",
			"kind", kind.String(), "object_id", objectID, "error", err)
		return
	}

	seen := make(map[uint]bool, len(holders))
	for _, holder := range holders {
		if seen[holder.UserID] {
			continue
		}
		seen[holder.UserID] = true
		n.deliver(ctx, holder.UserID, subject, body)
	}
}

func (n *Notifier) sendToSlotHolder(kind assignvo.Kind, objectID uint, role assignvo.Role, subject, body string) {
	ctx := context.Background()
	holder, err := n.assignments.CurrentHolder(ctx, kind, objectID, role)
	if err != nil {
		n.logger.Warnw("failed to resolve slot holder",
			"kind", kind.String(), "object_id", objectID, "role", role.String(), "error", err)
		return
	}
	if holder == nil {
		return
	}
	n.deliver(ctx, holder.UserID, subject, body)
}

func (n *Notifier) sendToUser(userID uint, subject, body string) {
	n.deliver(context.Background(), userID, subject, body)
}

func (n *Notifier) deliver(ctx context.Context, userID uint, subject, body string) {
	u, err := n.userRepo.GetByID(ctx, userID)
	if err != nil {
		n.logger.Warnw("failed to load notification recipient", "user_id", userID, "error", err)
		return
	}
	if err := n.sender.Send(u.Email(), subject, body); err != nil {
		n.logger.Warnw("failed to send notification email",
			"user_id", userID, "subject", subject, "error", err)
	}
}
