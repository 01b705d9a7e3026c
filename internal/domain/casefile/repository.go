package casefile

import (
	"context"

	vo "custodian/internal/domain/casefile/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, c *Case) error
	Update(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id uint) (*Case, error)
	GetByName(ctx context.Context, name string) (*Case, error)
	List(ctx context.Context, filter Filter) ([]*Case, int64, error)
	CountByStatus(ctx context.Context, status vo.Status) (int64, error)
}

type Filter struct {
	Statuses []vo.Status
	Private  *bool
	Page     int
	PageSize int
}
