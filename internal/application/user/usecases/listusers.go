package usecases

import (
	"context"

	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	vo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/logger"
)

type ListUsersQuery struct {
	Role     string
	Page     int
	PageSize int
	ActorID  uint
}

type ListUsersResult struct {
	Users []*UserDTO
	Total int64
}

// ListUsersUseCase is an administrator-only directory view.
type ListUsersUseCase struct {
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, perm *permission.Service, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, perm: perm, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, q ListUsersQuery) (*ListUsersResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionView, permission.KindRef(permission.KindUser)); err != nil {
		return nil, err
	}

	filter := user.Filter{Page: q.Page, PageSize: q.PageSize}
	if q.Role != "" {
		role, err := vo.ParseRole(q.Role)
		if err == nil {
			filter.Role = &role
		}
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	result := &ListUsersResult{Total: total}
	for _, u := range users {
		result.Users = append(result.Users, userToDTO(u))
	}
	return result, nil
}
