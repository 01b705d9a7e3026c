package usecases

import (
	"context"
	"time"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/logger"
)

type GetTaskQuery struct {
	TaskID  uint
	ActorID uint
}

type TaskStatusEntryDTO struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	ActorID   uint      `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

type TaskDTO struct {
	ID            uint                 `json:"id"`
	CaseID        uint                 `json:"case_id"`
	Name          string               `json:"name"`
	Background    string               `json:"background,omitempty"`
	Location      string               `json:"location,omitempty"`
	Status        string               `json:"status"`
	PrincipalQAID *uint                `json:"principal_qa_id,omitempty"`
	SecondaryQAID *uint                `json:"secondary_qa_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	StatusHistory []TaskStatusEntryDTO `json:"status_history,omitempty"`
}

type GetTaskUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewGetTaskUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *GetTaskUseCase {
	return &GetTaskUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		logger:   logger,
	}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, q GetTaskQuery) (*TaskDTO, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, q.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionView, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	return taskToDTO(t, true), nil
}

func taskToDTO(t *task.Task, full bool) *TaskDTO {
	dto := &TaskDTO{
		ID:            t.ID(),
		CaseID:        t.CaseID(),
		Name:          t.Name(),
		Background:    t.Background(),
		Location:      t.Location(),
		Status:        t.Status().String(),
		PrincipalQAID: t.PrincipalQAID(),
		SecondaryQAID: t.SecondaryQAID(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
	if !full {
		return dto
	}
	for _, entry := range t.StatusHistory() {
		dto.StatusHistory = append(dto.StatusHistory, TaskStatusEntryDTO{
			Status:    entry.Status.String(),
			Note:      entry.Note,
			ActorID:   entry.ActorID,
			Timestamp: entry.Timestamp,
		})
	}
	return dto
}
