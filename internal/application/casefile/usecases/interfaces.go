package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
)

// Notifier delivers case lifecycle notifications. Implementations send
// asynchronously and log their own failures; usecases fire and forget.
type Notifier interface {
	CaseStatusChanged(ctx context.Context, c *casefile.Case, actorID uint)
	CaseAuthorisationDecided(ctx context.Context, c *casefile.Case, granted bool)
	CaseRoleAssigned(ctx context.Context, c *casefile.Case, role string, userID uint)
}

// TransactionManager runs fn within one database transaction. Repository
// writes made through fn's context commit or roll back together.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
