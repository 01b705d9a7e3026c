package usecases

import (
	"context"
	"fmt"
	"time"

	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type GetUserQuery struct {
	UserID  uint
	ActorID uint
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Forename  string    `json:"forename"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	ManagerID *uint     `json:"manager_id,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GetUserUseCase struct {
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, perm *permission.Service, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, perm: perm, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, q GetUserQuery) (*UserDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	u, err := uc.userRepo.GetByID(ctx, q.UserID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", q.UserID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionView, permission.UserRef(u)); err != nil {
		return nil, err
	}

	return userToDTO(u), nil
}

func userToDTO(u *user.User) *UserDTO {
	roles := make([]string, 0)
	for _, role := range u.ActiveRoles() {
		roles = append(roles, role.String())
	}
	return &UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		Forename:  u.Forename(),
		Surname:   u.Surname(),
		Email:     u.Email(),
		ManagerID: u.ManagerID(),
		Roles:     roles,
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
