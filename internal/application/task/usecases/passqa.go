package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type PassQACommand struct {
	TaskID  uint
	Note    string
	ActorID uint
}

type QAReviewResult struct {
	TaskID  uint
	Status  string
	Applied bool
}

// PassQAUseCase records a pass verdict from one of the task's QA
// reviewers. With two reviewers configured the task only moves to delivery
// once both have passed; a verdict from anyone else, or outside a QA
// round, is ignored.
type PassQAUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	notifier Notifier
	logger   logger.Interface
}

func NewPassQAUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *PassQAUseCase {
	return &PassQAUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *PassQAUseCase) Execute(ctx context.Context, cmd PassQACommand) (*QAReviewResult, error) {
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

	applied := t.PassQA(cmd.Note, cmd.ActorID)
	if !applied {
		uc.logger.Warnw("QA pass ignored",
			"task_id", cmd.TaskID, "actor_id", cmd.ActorID, "status", t.Status())
		return &QAReviewResult{TaskID: t.ID(), Status: t.Status().String(), Applied: false}, nil
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.notifier.TaskStatusChanged(ctx, t, cmd.ActorID)
	uc.logger.Infow("QA pass recorded", "task_id", t.ID(), "status", t.Status())
	return &QAReviewResult{TaskID: t.ID(), Status: t.Status().String(), Applied: true}, nil
}
