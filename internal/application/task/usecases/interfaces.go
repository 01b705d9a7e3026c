package usecases

import (
	"context"

	"custodian/internal/domain/task"
)

// Notifier delivers task lifecycle notifications. Implementations send
// asynchronously and log their own failures.
type Notifier interface {
	TaskStatusChanged(ctx context.Context, t *task.Task, actorID uint)
	TaskRoleAssigned(ctx context.Context, t *task.Task, role string, userID uint)
}

// TransactionManager runs fn within one database transaction. Repository
// writes made through fn's context commit or roll back together.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
