package usecases

import (
	"context"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	vo "custodian/internal/domain/task/valueobjects"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type AssignSelfCommand struct {
	TaskID  uint
	ActorID uint
}

type AssignSelfResult struct {
	TaskID uint
	Status string
}

// AssignSelfUseCase lets an investigator claim an unstarted task. The
// principal investigator slot must be vacant; claiming moves the task to
// allocated.
type AssignSelfUseCase struct {
	taskRepo    task.Repository
	caseRepo    casefile.Repository
	userRepo    user.Repository
	assignments assignment.Repository
	txMgr       TransactionManager
	perm        *permission.Service
	notifier    Notifier
	logger      logger.Interface
}

func NewAssignSelfUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	assignments assignment.Repository,
	txMgr TransactionManager,
	perm *permission.Service,
	notifier Notifier,
	logger logger.Interface,
) *AssignSelfUseCase {
	return &AssignSelfUseCase{
		taskRepo:    taskRepo,
		caseRepo:    caseRepo,
		userRepo:    userRepo,
		assignments: assignments,
		txMgr:       txMgr,
		perm:        perm,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AssignSelfUseCase) Execute(ctx context.Context, cmd AssignSelfCommand) (*AssignSelfResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionAssignSelf, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	holder, err := uc.assignments.CurrentHolder(ctx, assignvo.KindTask, t.ID(), assignvo.RolePrincipalInvestigator)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		return nil, errors.NewConflictError("task already has a principal investigator")
	}

	rec, err := assignment.NewRecord(assignvo.KindTask, t.ID(), assignvo.RolePrincipalInvestigator, cmd.ActorID, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Slot claim and status write land in one transaction: a claimed task
	// must never stay unallocated.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignments.Replace(txCtx, rec); err != nil {
			uc.logger.Errorw("failed to claim task", "task_id", t.ID(), "error", err)
			return err
		}
		t.SetStatus(vo.StatusAllocated, cmd.ActorID, "claimed by investigator")
		if err := uc.taskRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update task", "task_id", t.ID(), "error", err)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notifier.TaskStatusChanged(ctx, t, cmd.ActorID)
	uc.logger.Infow("task claimed", "task_id", t.ID(), "actor_id", cmd.ActorID)
	return &AssignSelfResult{TaskID: t.ID(), Status: t.Status().String()}, nil
}
