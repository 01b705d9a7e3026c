package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	vo "custodian/internal/domain/evidence/valueobjects"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type ListEvidenceQuery struct {
	CaseID   *uint
	Statuses []string
	Page     int
	PageSize int
	ActorID  uint
}

type ListEvidenceResult struct {
	Evidence []*EvidenceDTO
	Total    int64
}

type ListEvidenceUseCase struct {
	evidenceRepo evidence.Repository
	caseRepo     casefile.Repository
	userRepo     user.Repository
	perm         *permission.Service
	logger       logger.Interface
}

func NewListEvidenceUseCase(
	evidenceRepo evidence.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *ListEvidenceUseCase {
	return &ListEvidenceUseCase{
		evidenceRepo: evidenceRepo,
		caseRepo:     caseRepo,
		userRepo:     userRepo,
		perm:         perm,
		logger:       logger,
	}
}

func (uc *ListEvidenceUseCase) Execute(ctx context.Context, q ListEvidenceQuery) (*ListEvidenceResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	filter := evidence.Filter{CaseID: q.CaseID, Page: q.Page, PageSize: q.PageSize}
	for _, s := range q.Statuses {
		status := vo.Status(s)
		if status.IsValid() {
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	items, _, err := uc.evidenceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list evidence", "error", err)
		return nil, err
	}

	parents := make(map[uint]*casefile.Case)
	result := &ListEvidenceResult{}
	for _, e := range items {
		var parent *casefile.Case
		if e.CaseID() != nil {
			var ok bool
			parent, ok = parents[*e.CaseID()]
			if !ok {
				parent, err = uc.caseRepo.GetByID(ctx, *e.CaseID())
				if err != nil {
					uc.logger.Warnw("skipping evidence with unloadable case",
						"evidence_id", e.ID(), "case_id", *e.CaseID(), "error", err)
					continue
				}
				parents[*e.CaseID()] = parent
			}
		}
		visible, err := uc.perm.Has(ctx, actor, permission.ActionView, permission.EvidenceRef(e, parent))
		if err != nil {
			return nil, err
		}
		if visible {
			result.Evidence = append(result.Evidence, evidenceToDTO(e, false))
		}
	}
	result.Total = int64(len(result.Evidence))
	return result, nil
}
