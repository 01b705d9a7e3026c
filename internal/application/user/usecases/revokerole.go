package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	vo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type RevokeRoleCommand struct {
	UserID  uint
	Role    string
	ActorID uint
}

type RevokeRoleResult struct {
	UserID  uint
	Role    string
	Changed bool
}

type RevokeRoleUseCase struct {
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewRevokeRoleUseCase(
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *RevokeRoleUseCase {
	return &RevokeRoleUseCase{userRepo: userRepo, perm: perm, notifier: notifier, logger: logger}
}

func (uc *RevokeRoleUseCase) Execute(ctx context.Context, cmd RevokeRoleCommand) (*RevokeRoleResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionManageRoles, permission.UserRef(u)); err != nil {
		return nil, err
	}

	role, err := vo.ParseRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	changed, err := u.RevokeRole(role, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !changed {
		// Revoking an inactive role appends nothing.
		return &RevokeRoleResult{UserID: u.ID(), Role: role.String(), Changed: false}, nil
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user roles", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.notifier.RoleChanged(ctx, u, role.String(), false)

	uc.logger.Infow("role revoked",
		"user_id", u.ID(),
		"role", role.String(),
		"actor_id", cmd.ActorID,
	)

	return &RevokeRoleResult{UserID: u.ID(), Role: role.String(), Changed: true}, nil
}
