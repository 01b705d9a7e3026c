package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	vo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type ListCasesQuery struct {
	Statuses []string
	Private  *bool
	Page     int
	PageSize int
	ActorID  uint
}

type ListCasesResult struct {
	Cases []*CaseDTO
	Total int64
}

type ListCasesUseCase struct {
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewListCasesUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *ListCasesUseCase {
	return &ListCasesUseCase{caseRepo: caseRepo, userRepo: userRepo, perm: perm, logger: logger}
}

func (uc *ListCasesUseCase) Execute(ctx context.Context, q ListCasesQuery) (*ListCasesResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	filter := casefile.Filter{Private: q.Private, Page: q.Page, PageSize: q.PageSize}
	for _, s := range q.Statuses {
		status := vo.Status(s)
		if status.IsValid() {
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	cases, _, err := uc.caseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list cases", "error", err)
		return nil, err
	}

	// Visibility is a per-case rule, so the page is filtered after the
	// query. Totals reflect what the actor can see, not the table count.
	result := &ListCasesResult{}
	for _, c := range cases {
		visible, err := uc.perm.Has(ctx, actor, permission.ActionView, permission.CaseRef(c))
		if err != nil {
			return nil, err
		}
		if visible {
			result.Cases = append(result.Cases, caseToDTO(c, false))
		}
	}
	result.Total = int64(len(result.Cases))
	return result, nil
}
