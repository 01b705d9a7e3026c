package users

import (
	"context"

	"custodian/internal/application/user/usecases"
)

// Use case interfaces for UserHandler - enables unit testing with mocks.

type registerUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterUserCommand) (*usecases.RegisterUserResult, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, q usecases.GetUserQuery) (*usecases.UserDTO, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, q usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type updateUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*usecases.UserDTO, error)
}

type grantRoleUseCase interface {
	Execute(ctx context.Context, cmd usecases.GrantRoleCommand) (*usecases.GrantRoleResult, error)
}

type revokeRoleUseCase interface {
	Execute(ctx context.Context, cmd usecases.RevokeRoleCommand) (*usecases.RevokeRoleResult, error)
}

type setManagerUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetManagerCommand) (*usecases.UserDTO, error)
}
