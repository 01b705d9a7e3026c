package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
)

func loadActor(ctx context.Context, users user.Repository, actorID uint) (*user.User, error) {
	if actorID == 0 {
		return nil, errors.NewUnauthorizedError("missing authenticated user")
	}
	actor, err := users.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("authenticated user not found")
	}
	return actor, nil
}

// loadTaskWithCase loads the task and its parent case. Rules on tasks
// derive visibility and editability from the parent, so both are needed
// for every permission check.
func loadTaskWithCase(ctx context.Context, tasks task.Repository, cases casefile.Repository, taskID uint) (*task.Task, *casefile.Case, error) {
	t, err := tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, errors.NewNotFoundError(fmt.Sprintf("task %d not found", taskID))
	}
	parent, err := cases.GetByID(ctx, t.CaseID())
	if err != nil {
		return nil, nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", t.CaseID()))
	}
	return t, parent, nil
}
