package permission

import (
	"context"
	"fmt"

	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
)

// Service is the single entry point the application layer uses to answer
// "may this user perform this action on this object".
type Service struct {
	registry *Registry
}

func NewService(registry *Registry) *Service {
	return &Service{registry: registry}
}

// Has reports whether the actor may perform the action. A nil actor is
// always denied. Errors from repository-backed checkers propagate.
func (s *Service) Has(ctx context.Context, actor *user.User, action Action, ref Ref) (bool, error) {
	if actor == nil {
		return false, nil
	}
	checker, err := s.registry.Lookup(ref.Kind, action)
	if err != nil {
		return false, err
	}
	return checker.Check(ctx, actor, ref)
}

// Check is Has with a denial turned into a forbidden error, for call sites
// that want to fail instead of branch.
func (s *Service) Check(ctx context.Context, actor *user.User, action Action, ref Ref) error {
	allowed, err := s.Has(ctx, actor, action, ref)
	if err != nil {
		return err
	}
	if !allowed {
		return errors.NewForbiddenError(
			fmt.Sprintf("not permitted to %s this %s", action, ref.Kind))
	}
	return nil
}
