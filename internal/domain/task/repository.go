package task

import (
	"context"

	vo "custodian/internal/domain/task/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id uint) (*Task, error)
	ListByCase(ctx context.Context, caseID uint) ([]*Task, error)
	List(ctx context.Context, filter Filter) ([]*Task, int64, error)
}

type Filter struct {
	CaseID   *uint
	Statuses []vo.Status
	Page     int
	PageSize int
}
