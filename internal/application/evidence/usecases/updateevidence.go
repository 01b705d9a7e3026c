package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/history"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

var evidenceAuditRecorder = history.NewRecorder([]history.FieldAccessor[*evidence.Evidence]{
	{Name: "type", Get: func(e *evidence.Evidence) string { return e.Type() }},
	{Name: "description", Get: func(e *evidence.Evidence) string { return e.Description() }},
	{Name: "originator", Get: func(e *evidence.Evidence) string { return e.Originator() }},
})

type UpdateEvidenceCommand struct {
	EvidenceID  uint
	Type        string
	Description string
	Originator  string
	// AssociateCaseID links unassociated evidence to a case. Moving
	// evidence between cases is not supported.
	AssociateCaseID *uint
	ActorID         uint
}

type UpdateEvidenceUseCase struct {
	evidenceRepo evidence.Repository
	caseRepo     casefile.Repository
	userRepo     user.Repository
	perm         *permission.Service
	logger       logger.Interface
}

func NewUpdateEvidenceUseCase(
	evidenceRepo evidence.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *UpdateEvidenceUseCase {
	return &UpdateEvidenceUseCase{
		evidenceRepo: evidenceRepo,
		caseRepo:     caseRepo,
		userRepo:     userRepo,
		perm:         perm,
		logger:       logger,
	}
}

func (uc *UpdateEvidenceUseCase) Execute(ctx context.Context, cmd UpdateEvidenceCommand) (*EvidenceDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	e, parent, err := loadEvidenceWithCase(ctx, uc.evidenceRepo, uc.caseRepo, cmd.EvidenceID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionEdit, permission.EvidenceRef(e, parent)); err != nil {
		return nil, err
	}

	evidenceType := cmd.Type
	if evidenceType == "" {
		evidenceType = e.Type()
	}
	before := evidenceAuditRecorder.Capture(e, cmd.ActorID)
	if err := e.UpdateDetails(evidenceType, cmd.Description, cmd.Originator); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.AssociateCaseID != nil {
		if e.CaseID() != nil {
			return nil, errors.NewConflictError("evidence is already associated with a case")
		}
		if _, err := uc.caseRepo.GetByID(ctx, *cmd.AssociateCaseID); err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", *cmd.AssociateCaseID))
		}
		if err := e.AssociateCase(*cmd.AssociateCaseID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	after := evidenceAuditRecorder.Capture(e, cmd.ActorID)

	if err := uc.evidenceRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update evidence", "evidence_id", cmd.EvidenceID, "error", err)
		return nil, err
	}

	for _, change := range evidenceAuditRecorder.Diff(before, after) {
		uc.logger.Infow("evidence field changed",
			"evidence_id", e.ID(), "field", change.Field, "from", change.From, "to", change.To,
			"actor_id", cmd.ActorID)
	}
	uc.logger.Infow("evidence updated", "evidence_id", e.ID(), "actor_id", cmd.ActorID)
	return evidenceToDTO(e, false), nil
}
