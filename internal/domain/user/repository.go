package user

import (
	"context"

	vo "custodian/internal/domain/user/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	// ListByActiveRole returns users whose newest toggle entry for the role
	// is a grant.
	ListByActiveRole(ctx context.Context, role vo.Role) ([]*User, error)
}

type Filter struct {
	Role     *vo.Role
	Page     int
	PageSize int
}
