package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type RequestQACommand struct {
	TaskID  uint
	Note    string
	ActorID uint
}

type RequestQAResult struct {
	TaskID uint
	Status string
}

// RequestQAUseCase moves a task into QA review and resets the sign-off
// flags for a fresh round.
type RequestQAUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewRequestQAUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *RequestQAUseCase {
	return &RequestQAUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RequestQAUseCase) Execute(ctx context.Context, cmd RequestQACommand) (*RequestQAResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionRequestQA, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	t.RequestQA(cmd.ActorID, cmd.Note)

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.notifier.TaskStatusChanged(ctx, t, cmd.ActorID)
	uc.logger.Infow("QA requested", "task_id", t.ID(), "actor_id", cmd.ActorID)
	return &RequestQAResult{TaskID: t.ID(), Status: t.Status().String()}, nil
}
