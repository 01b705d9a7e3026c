package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type CloseCaseCommand struct {
	CaseID  uint
	Reason  string
	ActorID uint
}

type CloseCaseUseCase struct {
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewCloseCaseUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *CloseCaseUseCase {
	return &CloseCaseUseCase{
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *CloseCaseUseCase) Execute(ctx context.Context, cmd CloseCaseCommand) (*CaseDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", cmd.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionClose, permission.CaseRef(c)); err != nil {
		return nil, err
	}

	if len(cmd.Reason) == 0 {
		return nil, errors.NewValidationError("closure reason is required")
	}

	c.Close(cmd.Reason, cmd.ActorID)

	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	uc.notifier.CaseStatusChanged(ctx, c, cmd.ActorID)
	uc.logger.Infow("case closed", "case_id", c.ID(), "actor_id", cmd.ActorID)
	return caseToDTO(c, false), nil
}
