package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type AssignInvestigatorsCommand struct {
	TaskID      uint
	PrincipalID *uint
	SecondaryID *uint
	ActorID     uint
}

type AssignInvestigatorsResult struct {
	TaskID uint
}

// AssignInvestigatorsUseCase installs investigator slot holders by
// delegation. Passing nil for a slot leaves it untouched.
type AssignInvestigatorsUseCase struct {
	taskRepo    task.Repository
	caseRepo    casefile.Repository
	userRepo    user.Repository
	assignments assignment.Repository
	perm        *permission.Service
	notifier    Notifier
	logger      logger.Interface
}

func NewAssignInvestigatorsUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	assignments assignment.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *AssignInvestigatorsUseCase {
	return &AssignInvestigatorsUseCase{
		taskRepo:    taskRepo,
		caseRepo:    caseRepo,
		userRepo:    userRepo,
		assignments: assignments,
		perm:        perm,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AssignInvestigatorsUseCase) Execute(ctx context.Context, cmd AssignInvestigatorsCommand) (*AssignInvestigatorsResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionAssignOther, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	slots := []struct {
		role   assignvo.Role
		userID *uint
	}{
		{assignvo.RolePrincipalInvestigator, cmd.PrincipalID},
		{assignvo.RoleSecondaryInvestigator, cmd.SecondaryID},
	}
	for _, slot := range slots {
		if slot.userID == nil {
			continue
		}
		if _, err := uc.userRepo.GetByID(ctx, *slot.userID); err != nil {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user %d not found", *slot.userID))
		}
		rec, err := assignment.NewRecord(assignvo.KindTask, t.ID(), slot.role, *slot.userID, cmd.ActorID)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.assignments.Replace(ctx, rec); err != nil {
			uc.logger.Errorw("failed to assign investigator",
				"task_id", t.ID(), "role", slot.role, "error", err)
			return nil, err
		}
		uc.notifier.TaskRoleAssigned(ctx, t, slot.role.String(), *slot.userID)
	}

	uc.logger.Infow("investigators assigned", "task_id", t.ID(), "actor_id", cmd.ActorID)
	return &AssignInvestigatorsResult{TaskID: t.ID()}, nil
}
