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

type SetCaseStatusCommand struct {
	CaseID  uint
	Status  string
	Reason  string
	ActorID uint
}

type SetCaseStatusResult struct {
	CaseID  uint
	Status  string
	Applied bool
}

type SetCaseStatusUseCase struct {
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewSetCaseStatusUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *SetCaseStatusUseCase {
	return &SetCaseStatusUseCase{
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SetCaseStatusUseCase) Execute(ctx context.Context, cmd SetCaseStatusCommand) (*SetCaseStatusResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", cmd.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionSetStatus, permission.CaseRef(c)); err != nil {
		return nil, err
	}

	applied := c.SetStatus(vo.Status(cmd.Status), cmd.ActorID, cmd.Reason)
	if !applied {
		// Unknown status values are ignored rather than rejected; the
		// caller learns nothing changed via the result.
		uc.logger.Warnw("ignoring unknown case status",
			"case_id", cmd.CaseID, "status", cmd.Status, "actor_id", cmd.ActorID)
		return &SetCaseStatusResult{CaseID: c.ID(), Status: c.Status().String(), Applied: false}, nil
	}

	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	uc.notifier.CaseStatusChanged(ctx, c, cmd.ActorID)
	uc.logger.Infow("case status changed", "case_id", c.ID(), "status", c.Status())

	return &SetCaseStatusResult{CaseID: c.ID(), Status: c.Status().String(), Applied: true}, nil
}
