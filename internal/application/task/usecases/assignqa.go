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

type AssignQACommand struct {
	TaskID      uint
	PrincipalID *uint
	SecondaryID *uint
	Note        string
	ActorID     uint
}

type AssignQAResult struct {
	TaskID uint
}

// AssignQAUseCase installs QA reviewers. The assignment records and the
// task's QA slot mirrors are written together so the workflow methods see
// the same reviewers the assignment history records.
type AssignQAUseCase struct {
	taskRepo    task.Repository
	caseRepo    casefile.Repository
	userRepo    user.Repository
	assignments assignment.Repository
	perm        *permission.Service
	notifier    Notifier
	logger      logger.Interface
}

func NewAssignQAUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	assignments assignment.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *AssignQAUseCase {
	return &AssignQAUseCase{
		taskRepo:    taskRepo,
		caseRepo:    caseRepo,
		userRepo:    userRepo,
		assignments: assignments,
		perm:        perm,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AssignQAUseCase) Execute(ctx context.Context, cmd AssignQACommand) (*AssignQAResult, error) {
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
		{assignvo.RolePrincipalQA, cmd.PrincipalID},
		{assignvo.RoleSecondaryQA, cmd.SecondaryID},
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
			uc.logger.Errorw("failed to assign QA reviewer",
				"task_id", t.ID(), "role", slot.role, "error", err)
			return nil, err
		}
		uc.notifier.TaskRoleAssigned(ctx, t, slot.role.String(), *slot.userID)
	}

	t.AssignQA(cmd.PrincipalID, cmd.SecondaryID, cmd.ActorID, cmd.Note)
	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("QA reviewers assigned", "task_id", t.ID(), "actor_id", cmd.ActorID)
	return &AssignQAResult{TaskID: t.ID()}, nil
}
