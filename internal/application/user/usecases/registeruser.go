package usecases

import (
	"context"
	"time"

	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username string
	Forename string
	Surname  string
	Email    string
	Password string
	ActorID  uint
}

type RegisterUserResult struct {
	UserID    uint
	Username  string
	CreatedAt time.Time
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	perm     *permission.Service
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	perm *permission.Service,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo, hasher: hasher, perm: perm, logger: logger}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "username", cmd.Username, "actor_id", cmd.ActorID)

	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionCreate, permission.KindRef(permission.KindUser)); err != nil {
		return nil, err
	}

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil && existing != nil {
		return nil, errors.NewConflictError("username already in use")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Forename, cmd.Surname, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())
	return &RegisterUserResult{
		UserID:    newUser.ID(),
		Username:  newUser.Username(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}
