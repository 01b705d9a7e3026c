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

type AuthoriseCaseCommand struct {
	CaseID  uint
	Granted bool
	Reason  string
	ActorID uint
}

type AuthoriseCaseResult struct {
	CaseID uint
	Code   string
	Status string
}

// AuthoriseCaseUseCase records an authorisation decision. Only the case's
// named authoriser passes the permission rule; there is no administrator
// bypass on this action.
type AuthoriseCaseUseCase struct {
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewAuthoriseCaseUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *AuthoriseCaseUseCase {
	return &AuthoriseCaseUseCase{
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *AuthoriseCaseUseCase) Execute(ctx context.Context, cmd AuthoriseCaseCommand) (*AuthoriseCaseResult, error) {
	uc.logger.Infow("executing authorise case use case",
		"case_id", cmd.CaseID, "granted", cmd.Granted, "actor_id", cmd.ActorID)

	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", cmd.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionAuthorise, permission.CaseRef(c)); err != nil {
		return nil, err
	}

	code := vo.AuthorisationRefused
	if cmd.Granted {
		code = vo.AuthorisationGranted
	}
	c.Authorise(cmd.ActorID, cmd.Reason, code)

	if err := uc.caseRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update case", "case_id", cmd.CaseID, "error", err)
		return nil, err
	}

	uc.notifier.CaseAuthorisationDecided(ctx, c, cmd.Granted)
	uc.logger.Infow("case authorisation decided",
		"case_id", c.ID(), "code", code, "status", c.Status())

	return &AuthoriseCaseResult{
		CaseID: c.ID(),
		Code:   code.String(),
		Status: c.Status().String(),
	}, nil
}
