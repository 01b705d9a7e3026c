package usecases

import (
	"context"
	"fmt"
	"time"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type CreateEvidenceCommand struct {
	CaseID      *uint
	Type        string
	Description string
	Originator  string
	ActorID     uint
}

type CreateEvidenceResult struct {
	EvidenceID uint
	Reference  string
	Status     string
	CreatedAt  time.Time
}

type CreateEvidenceUseCase struct {
	evidenceRepo evidence.Repository
	caseRepo     casefile.Repository
	userRepo     user.Repository
	perm         *permission.Service
	logger       logger.Interface
}

func NewCreateEvidenceUseCase(
	evidenceRepo evidence.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *CreateEvidenceUseCase {
	return &CreateEvidenceUseCase{
		evidenceRepo: evidenceRepo,
		caseRepo:     caseRepo,
		userRepo:     userRepo,
		perm:         perm,
		logger:       logger,
	}
}

func (uc *CreateEvidenceUseCase) Execute(ctx context.Context, cmd CreateEvidenceCommand) (*CreateEvidenceResult, error) {
	uc.logger.Infow("executing create evidence use case", "type", cmd.Type, "actor_id", cmd.ActorID)

	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionCreate, permission.KindRef(permission.KindEvidence)); err != nil {
		return nil, err
	}

	if cmd.CaseID != nil {
		if _, err := uc.caseRepo.GetByID(ctx, *cmd.CaseID); err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", *cmd.CaseID))
		}
	}

	e, err := evidence.NewEvidence(cmd.CaseID, cmd.Type, cmd.Description, cmd.Originator, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.evidenceRepo.Save(ctx, e); err != nil {
		uc.logger.Errorw("failed to save evidence", "error", err)
		return nil, err
	}

	uc.logger.Infow("evidence created", "evidence_id", e.ID(), "reference", e.Reference())
	return &CreateEvidenceResult{
		EvidenceID: e.ID(),
		Reference:  e.Reference(),
		Status:     e.Status().String(),
		CreatedAt:  e.CreatedAt(),
	}, nil
}
