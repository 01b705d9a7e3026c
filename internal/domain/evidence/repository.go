package evidence

import (
	"context"

	vo "custodian/internal/domain/evidence/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, e *Evidence) error
	Update(ctx context.Context, e *Evidence) error
	GetByID(ctx context.Context, id uint) (*Evidence, error)
	GetByReference(ctx context.Context, reference string) (*Evidence, error)
	ListByCase(ctx context.Context, caseID uint) ([]*Evidence, error)
	ListUnassociated(ctx context.Context) ([]*Evidence, error)
	List(ctx context.Context, filter Filter) ([]*Evidence, int64, error)
	// ListDueForReminder returns archived evidence whose retention date has
	// elapsed and whose reminder has not yet been sent.
	ListDueForReminder(ctx context.Context) ([]*Evidence, error)
}

type Filter struct {
	CaseID   *uint
	Statuses []vo.Status
	Page     int
	PageSize int
}
