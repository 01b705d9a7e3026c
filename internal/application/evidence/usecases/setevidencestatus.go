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

type SetEvidenceStatusCommand struct {
	EvidenceID uint
	Status     string
	Reason     string
	ActorID    uint
}

type SetEvidenceStatusResult struct {
	EvidenceID uint
	Status     string
	Applied    bool
}

// SetEvidenceStatusUseCase changes evidence status. Entering the archived
// status starts the retention clock using the configured retention period;
// leaving it clears the clock.
type SetEvidenceStatusUseCase struct {
	evidenceRepo    evidence.Repository
	caseRepo        casefile.Repository
	userRepo        user.Repository
	perm            *permission.Service
	notifier        Notifier
	retentionMonths int
	logger          logger.Interface
}

func NewSetEvidenceStatusUseCase(
	evidenceRepo evidence.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	retentionMonths int,
	logger logger.Interface,
) *SetEvidenceStatusUseCase {
	return &SetEvidenceStatusUseCase{
		evidenceRepo:    evidenceRepo,
		caseRepo:        caseRepo,
		userRepo:        userRepo,
		perm:            perm,
		notifier:        notifier,
		retentionMonths: retentionMonths,
		logger:          logger,
	}
}

func (uc *SetEvidenceStatusUseCase) Execute(ctx context.Context, cmd SetEvidenceStatusCommand) (*SetEvidenceStatusResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	e, parent, err := loadEvidenceWithCase(ctx, uc.evidenceRepo, uc.caseRepo, cmd.EvidenceID)
	if err != nil {
		return nil, err
	}

	action := permission.ActionSetStatus
	if vo.Status(cmd.Status) == vo.StatusArchived {
		action = permission.ActionArchive
	}
	if err := uc.perm.Check(ctx, actor, action, permission.EvidenceRef(e, parent)); err != nil {
		return nil, err
	}

	applied := e.SetStatus(vo.Status(cmd.Status), cmd.ActorID, cmd.Reason, uc.retentionMonths)
	if !applied {
		uc.logger.Warnw("ignoring unknown evidence status",
			"evidence_id", cmd.EvidenceID, "status", cmd.Status, "actor_id", cmd.ActorID)
		return &SetEvidenceStatusResult{EvidenceID: e.ID(), Status: e.Status().String(), Applied: false}, nil
	}

	if err := uc.evidenceRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update evidence", "evidence_id", cmd.EvidenceID, "error", err)
		return nil, err
	}

	uc.notifier.EvidenceStatusChanged(ctx, e, cmd.ActorID)
	uc.logger.Infow("evidence status changed", "evidence_id", e.ID(), "status", e.Status())
	return &SetEvidenceStatusResult{EvidenceID: e.ID(), Status: e.Status().String(), Applied: true}, nil
}
