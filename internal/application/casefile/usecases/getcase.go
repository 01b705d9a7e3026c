package usecases

import (
	"context"
	"fmt"
	"time"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type GetCaseQuery struct {
	CaseID  uint
	ActorID uint
}

type StatusEntryDTO struct {
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	ActorID   uint      `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

type AuthorisationEntryDTO struct {
	Code         string    `json:"code"`
	Reason       string    `json:"reason,omitempty"`
	AuthoriserID uint      `json:"authoriser_id"`
	Timestamp    time.Time `json:"timestamp"`
}

type CaseDTO struct {
	ID             uint                    `json:"id"`
	Name           string                  `json:"name"`
	Private        bool                    `json:"private"`
	Background     string                  `json:"background,omitempty"`
	Location       string                  `json:"location,omitempty"`
	Classification string                  `json:"classification,omitempty"`
	Status         string                  `json:"status"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
	StatusHistory  []StatusEntryDTO        `json:"status_history,omitempty"`
	Authorisations []AuthorisationEntryDTO `json:"authorisations,omitempty"`
}

type GetCaseUseCase struct {
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewGetCaseUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *GetCaseUseCase {
	return &GetCaseUseCase{caseRepo: caseRepo, userRepo: userRepo, perm: perm, logger: logger}
}

func (uc *GetCaseUseCase) Execute(ctx context.Context, q GetCaseQuery) (*CaseDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	c, err := uc.caseRepo.GetByID(ctx, q.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", q.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionView, permission.CaseRef(c)); err != nil {
		return nil, err
	}

	return caseToDTO(c, true), nil
}

func caseToDTO(c *casefile.Case, full bool) *CaseDTO {
	dto := &CaseDTO{
		ID:             c.ID(),
		Name:           c.Name(),
		Private:        c.IsPrivate(),
		Background:     c.Background(),
		Location:       c.Location(),
		Classification: c.Classification(),
		Status:         c.Status().String(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
	if !full {
		return dto
	}
	for _, entry := range c.StatusHistory() {
		dto.StatusHistory = append(dto.StatusHistory, StatusEntryDTO{
			Status:    entry.Status.String(),
			Reason:    entry.Reason,
			ActorID:   entry.ActorID,
			Timestamp: entry.Timestamp,
		})
	}
	for _, entry := range c.Authorisations() {
		dto.Authorisations = append(dto.Authorisations, AuthorisationEntryDTO{
			Code:         entry.Code.String(),
			Reason:       entry.Reason,
			AuthoriserID: entry.AuthoriserID,
			Timestamp:    entry.Timestamp,
		})
	}
	return dto
}
