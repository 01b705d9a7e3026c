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

type ListTasksQuery struct {
	CaseID   *uint
	Statuses []string
	Page     int
	PageSize int
	ActorID  uint
}

type ListTasksResult struct {
	Tasks []*TaskDTO
	Total int64
}

type ListTasksUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewListTasksUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		logger:   logger,
	}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, q ListTasksQuery) (*ListTasksResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, q.ActorID)
	if err != nil {
		return nil, err
	}

	filter := task.Filter{CaseID: q.CaseID, Page: q.Page, PageSize: q.PageSize}
	for _, s := range q.Statuses {
		status := vo.Status(s)
		if status.IsValid() {
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	tasks, _, err := uc.taskRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	// Parent cases are loaded once per case, then each task goes through
	// the view rule individually.
	parents := make(map[uint]*casefile.Case)
	result := &ListTasksResult{}
	for _, t := range tasks {
		parent, ok := parents[t.CaseID()]
		if !ok {
			parent, err = uc.caseRepo.GetByID(ctx, t.CaseID())
			if err != nil {
				uc.logger.Warnw("skipping task with unloadable case",
					"task_id", t.ID(), "case_id", t.CaseID(), "error", err)
				continue
			}
			parents[t.CaseID()] = parent
		}
		visible, err := uc.perm.Has(ctx, actor, permission.ActionView, permission.TaskRef(t, parent))
		if err != nil {
			return nil, err
		}
		if visible {
			result.Tasks = append(result.Tasks, taskToDTO(t, false))
		}
	}
	result.Total = int64(len(result.Tasks))
	return result, nil
}
