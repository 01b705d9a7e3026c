package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	vo "custodian/internal/domain/task/valueobjects"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type SetTaskStatusCommand struct {
	TaskID  uint
	Status  string
	Note    string
	ActorID uint
}

type SetTaskStatusResult struct {
	TaskID  uint
	Status  string
	Applied bool
}

type SetTaskStatusUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewSetTaskStatusUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *SetTaskStatusUseCase {
	return &SetTaskStatusUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SetTaskStatusUseCase) Execute(ctx context.Context, cmd SetTaskStatusCommand) (*SetTaskStatusResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionSetStatus, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	applied := t.SetStatus(vo.Status(cmd.Status), cmd.ActorID, cmd.Note)
	if !applied {
		uc.logger.Warnw("ignoring unknown task status",
			"task_id", cmd.TaskID, "status", cmd.Status, "actor_id", cmd.ActorID)
		return &SetTaskStatusResult{TaskID: t.ID(), Status: t.Status().String(), Applied: false}, nil
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.notifier.TaskStatusChanged(ctx, t, cmd.ActorID)
	uc.logger.Infow("task status changed", "task_id", t.ID(), "status", t.Status())
	return &SetTaskStatusResult{TaskID: t.ID(), Status: t.Status().String(), Applied: true}, nil
}
