package usecases

import (
	"context"
	"fmt"
	"time"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type CreateTaskCommand struct {
	CaseID     uint
	Name       string
	Background string
	Location   string
	ActorID    uint
}

type CreateTaskResult struct {
	TaskID    uint
	CaseID    uint
	Name      string
	Status    string
	CreatedAt time.Time
}

type CreateTaskUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewCreateTaskUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		logger:   logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	uc.logger.Infow("executing create task use case", "case_id", cmd.CaseID, "name", cmd.Name)

	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	parent, err := uc.caseRepo.GetByID(ctx, cmd.CaseID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", cmd.CaseID))
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionCreate, permission.TaskRef(nil, parent)); err != nil {
		return nil, err
	}

	newTask, err := task.NewTask(cmd.CaseID, cmd.Name, cmd.Background, cmd.Location, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Save(ctx, newTask); err != nil {
		uc.logger.Errorw("failed to save task", "error", err)
		return nil, err
	}

	uc.logger.Infow("task created", "task_id", newTask.ID(), "case_id", cmd.CaseID)
	return &CreateTaskResult{
		TaskID:    newTask.ID(),
		CaseID:    newTask.CaseID(),
		Name:      newTask.Name(),
		Status:    newTask.Status().String(),
		CreatedAt: newTask.CreatedAt(),
	}, nil
}
