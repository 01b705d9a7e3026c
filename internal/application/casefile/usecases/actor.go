package usecases

import (
	"context"

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
