package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/history"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

var taskAuditRecorder = history.NewRecorder([]history.FieldAccessor[*task.Task]{
	{Name: "name", Get: func(t *task.Task) string { return t.Name() }},
	{Name: "background", Get: func(t *task.Task) string { return t.Background() }},
	{Name: "location", Get: func(t *task.Task) string { return t.Location() }},
})

type UpdateTaskCommand struct {
	TaskID     uint
	Name       string
	Background string
	Location   string
	ActorID    uint
}

type UpdateTaskUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewUpdateTaskUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		logger:   logger,
	}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*TaskDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionEdit, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	name := cmd.Name
	if name == "" {
		name = t.Name()
	}
	before := taskAuditRecorder.Capture(t, cmd.ActorID)
	if err := t.UpdateDetails(name, cmd.Background, cmd.Location); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	after := taskAuditRecorder.Capture(t, cmd.ActorID)

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	for _, change := range taskAuditRecorder.Diff(before, after) {
		uc.logger.Infow("task field changed",
			"task_id", t.ID(), "field", change.Field, "from", change.From, "to", change.To,
			"actor_id", cmd.ActorID)
	}
	uc.logger.Infow("task updated", "task_id", t.ID(), "actor_id", cmd.ActorID)
	return taskToDTO(t, false), nil
}
