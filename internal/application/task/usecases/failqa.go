package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type FailQACommand struct {
	TaskID  uint
	Note    string
	ActorID uint
}

// FailQAUseCase records a fail verdict. A single failure from either
// reviewer sends the task back to progress and resets both sign-off flags.
type FailQAUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewFailQAUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *FailQAUseCase {
	return &FailQAUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *FailQAUseCase) Execute(ctx context.Context, cmd FailQACommand) (*QAReviewResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionCompleteQA, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	applied := t.FailQA(cmd.Note, cmd.ActorID)
	if !applied {
		uc.logger.Warnw("QA fail ignored",
			"task_id", cmd.TaskID, "actor_id", cmd.ActorID, "status", t.Status())
		return &QAReviewResult{TaskID: t.ID(), Status: t.Status().String(), Applied: false}, nil
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.notifier.TaskStatusChanged(ctx, t, cmd.ActorID)
	uc.logger.Infow("QA fail recorded", "task_id", t.ID(), "status", t.Status())
	return &QAReviewResult{TaskID: t.ID(), Status: t.Status().String(), Applied: true}, nil
}
