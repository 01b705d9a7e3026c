// Package permission implements the authorization rule engine: a registry
// mapping (object kind, action) pairs to composable boolean predicates over
// (user, object) pairs. Leaf checkers test one fact each; And, Or and Not
// combine them with short-circuit evaluation. Mutators perform no checks of
// their own: "can this happen" lives here, "make it happen" lives in the
// aggregates.
package permission

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
)

// Ref carries the loaded object a rule is evaluated against. For tasks and
// evidence the parent case (when one exists) must be loaded too: several
// rules derive from parent case status and visibility. Class-level actions
// such as create carry only the kind.
type Ref struct {
	Kind     ObjectKind
	Case     *casefile.Case
	Task     *task.Task
	Evidence *evidence.Evidence
	User     *user.User
}

// CaseRef builds a ref for a case object.
func CaseRef(c *casefile.Case) Ref {
	return Ref{Kind: KindCase, Case: c}
}

// TaskRef builds a ref for a task and its parent case.
func TaskRef(t *task.Task, parent *casefile.Case) Ref {
	return Ref{Kind: KindTask, Task: t, Case: parent}
}

// EvidenceRef builds a ref for evidence; parent is nil for unassociated
// evidence.
func EvidenceRef(e *evidence.Evidence, parent *casefile.Case) Ref {
	return Ref{Kind: KindEvidence, Evidence: e, Case: parent}
}

// UserRef builds a ref for a user object.
func UserRef(u *user.User) Ref {
	return Ref{Kind: KindUser, User: u}
}

// KindRef builds an object-less ref for class-level actions.
func KindRef(kind ObjectKind) Ref {
	return Ref{Kind: kind}
}

// Checker is a predicate over a (user, object) pair.
type Checker interface {
	Check(ctx context.Context, actor *user.User, ref Ref) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, actor *user.User, ref Ref) (bool, error)

func (f CheckerFunc) Check(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
	return f(ctx, actor, ref)
}

type andChecker struct {
	children []Checker
}

// And is satisfied when every child is; evaluation stops at the first
// false.
func And(children ...Checker) Checker {
	return &andChecker{children: children}
}

func (c *andChecker) Check(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
	for _, child := range c.children {
		ok, err := child.Check(ctx, actor, ref)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

type orChecker struct {
	children []Checker
}

// Or is satisfied when any child is; evaluation stops at the first true.
func Or(children ...Checker) Checker {
	return &orChecker{children: children}
}

func (c *orChecker) Check(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
	for _, child := range c.children {
		ok, err := child.Check(ctx, actor, ref)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

type notChecker struct {
	child Checker
}

// Not negates its child.
func Not(child Checker) Checker {
	return &notChecker{child: child}
}

func (c *notChecker) Check(ctx context.Context, actor *user.User, ref Ref) (bool, error) {
	ok, err := c.child.Check(ctx, actor, ref)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
