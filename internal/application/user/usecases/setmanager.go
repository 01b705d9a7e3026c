package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

// maxManagerChainHops bounds the manager-chain walk during cycle
// detection. Chains deeper than this are treated as cycles.
const maxManagerChainHops = 64

type SetManagerCommand struct {
	UserID    uint
	ManagerID *uint
	ActorID   uint
}

type SetManagerUseCase struct {
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewSetManagerUseCase(
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *SetManagerUseCase {
	return &SetManagerUseCase{userRepo: userRepo, perm: perm, logger: logger}
}

func (uc *SetManagerUseCase) Execute(ctx context.Context, cmd SetManagerCommand) (*UserDTO, error) {
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

	if cmd.ManagerID != nil {
		manager, err := uc.userRepo.GetByID(ctx, *cmd.ManagerID)
		if err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("manager %d not found", *cmd.ManagerID))
		}
		if err := uc.checkNoCycle(ctx, u.ID(), manager); err != nil {
			return nil, err
		}
	}

	if err := u.SetManager(cmd.ManagerID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user manager", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("manager set", "user_id", u.ID(), "manager_id", cmd.ManagerID, "actor_id", cmd.ActorID)
	return userToDTO(u), nil
}

// checkNoCycle walks the manager chain upwards from the proposed manager.
// Reaching the user being edited means the assignment would close a loop.
func (uc *SetManagerUseCase) checkNoCycle(ctx context.Context, userID uint, manager *user.User) error {
	current := manager
	for hops := 0; hops < maxManagerChainHops; hops++ {
		if current.ID() == userID {
			return errors.NewValidationError("manager assignment would create a management cycle")
		}
		next := current.ManagerID()
		if next == nil {
			return nil
		}
		parent, err := uc.userRepo.GetByID(ctx, *next)
		if err != nil {
			// A dangling manager reference terminates the chain.
			return nil
		}
		current = parent
	}
	return errors.NewValidationError("manager chain is too deep")
}
