package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/history"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

// Password hashes are excluded from the audit field table.
var userAuditRecorder = history.NewRecorder([]history.FieldAccessor[*user.User]{
	{Name: "forename", Get: func(u *user.User) string { return u.Forename() }},
	{Name: "surname", Get: func(u *user.User) string { return u.Surname() }},
	{Name: "email", Get: func(u *user.User) string { return u.Email() }},
})

type UpdateUserCommand struct {
	UserID   uint
	Forename string
	Surname  string
	Email    string
	Password string
	ActorID  uint
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	perm     *permission.Service
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	perm *permission.Service,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, hasher: hasher, perm: perm, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionEdit, permission.UserRef(u)); err != nil {
		return nil, err
	}

	before := userAuditRecorder.Capture(u, cmd.ActorID)
	if err := u.UpdateDetails(cmd.Forename, cmd.Surname, cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	after := userAuditRecorder.Capture(u, cmd.ActorID)

	if cmd.Password != "" {
		if len(cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	for _, change := range userAuditRecorder.Diff(before, after) {
		uc.logger.Infow("user field changed",
			"user_id", u.ID(), "field", change.Field, "from", change.From, "to", change.To,
			"actor_id", cmd.ActorID)
	}
	uc.logger.Infow("user updated", "user_id", u.ID(), "actor_id", cmd.ActorID)
	return userToDTO(u), nil
}
