package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/casefile"
	vo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type ArchiveCaseCommand struct {
	CaseID  uint
	Reason  string
	ActorID uint
}

// ArchiveCaseUseCase moves a closed case into the archive. Archived cases
// reject further edits for everyone except administrators.
type ArchiveCaseUseCase struct {
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewArchiveCaseUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *ArchiveCaseUseCase {
	return &ArchiveCaseUseCase{
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ArchiveCaseUseCase) Execute(ctx context.Context, cmd ArchiveCaseCommand) (*CaseDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", cmd.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionArchive, permission.CaseRef(c)); err != nil {
		return nil, err
	}

	c.SetStatus(vo.StatusArchived, cmd.ActorID, cmd.Reason)

	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	uc.notifier.CaseStatusChanged(ctx, c, cmd.ActorID)
	uc.logger.Infow("case archived", "case_id", c.ID(), "actor_id", cmd.ActorID)
	return caseToDTO(c, false), nil
}
