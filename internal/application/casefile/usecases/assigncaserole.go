package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type AssignCaseRoleCommand struct {
	CaseID  uint
	Role    string
	UserID  uint
	ActorID uint
}

type AssignCaseRoleResult struct {
	CaseID uint
	Role   string
	UserID uint
}

// AssignCaseRoleUseCase replaces a case role slot holder. The previous
// holder, if any, is closed out in the assignment history.
type AssignCaseRoleUseCase struct {
	caseRepo    casefile.Repository
	userRepo    user.Repository
	assignments assignment.Repository
	perm        *permission.Service
	notifier    Notifier
	logger      logger.Interface
}

func NewAssignCaseRoleUseCase(
	caseRepo casefile.Repository,
	userRepo user.Repository,
	assignments assignment.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *AssignCaseRoleUseCase {
	return &AssignCaseRoleUseCase{
		caseRepo:    caseRepo,
		userRepo:    userRepo,
		assignments: assignments,
		perm:        perm,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AssignCaseRoleUseCase) Execute(ctx context.Context, cmd AssignCaseRoleCommand) (*AssignCaseRoleResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	c, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", cmd.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionManageRoles, permission.CaseRef(c)); err != nil {
		return nil, err
	}

	role, err := assignvo.ParseRole(cmd.Role, assignvo.KindCase)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.userRepo.GetByID(ctx, cmd.UserID); err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", cmd.UserID))
	}

	rec, err := assignment.NewRecord(assignvo.KindCase, cmd.CaseID, role, cmd.UserID, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.assignments.Replace(ctx, rec); err != nil {
		uc.logger.Errorw("failed to replace case slot",
			"case_id", cmd.CaseID, "role", role, "error", err)
		return nil, err
	}

	uc.notifier.CaseRoleAssigned(ctx, c, role.String(), cmd.UserID)
	uc.logger.Infow("case role assigned",
		"case_id", cmd.CaseID, "role", role, "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	return &AssignCaseRoleResult{CaseID: cmd.CaseID, Role: role.String(), UserID: cmd.UserID}, nil
}
