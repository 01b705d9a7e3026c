package usecases

import (
	"context"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type AddNoteCommand struct {
	TaskID  uint
	Note    string
	ActorID uint
}

type AddNoteResult struct {
	TaskID uint
	Status string
}

// AddNoteUseCase attaches a progress note by re-appending the current
// status with the note text. Only statuses in the note-taking window
// accept notes; the permission rule enforces that.
type AddNoteUseCase struct {
	taskRepo task.Repository
	caseRepo casefile.Repository
	userRepo user.Repository
	perm     *permission.Service
	logger   logger.Interface
}

func NewAddNoteUseCase(
	taskRepo task.Repository,
	caseRepo casefile.Repository,
	userRepo user.Repository,
	perm *permission.Service,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		taskRepo: taskRepo,
		caseRepo: caseRepo,
		userRepo: userRepo,
		perm:     perm,
		logger:   logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	actor, err := loadActor(ctx, uc.userRepo, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	if len(cmd.Note) == 0 {
		return nil, errors.NewValidationError("note text is required")
	}

	t, parent, err := loadTaskWithCase(ctx, uc.taskRepo, uc.caseRepo, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := uc.perm.Check(ctx, actor, permission.ActionAddNote, permission.TaskRef(t, parent)); err != nil {
		return nil, err
	}

	t.AddNote(cmd.Note, cmd.ActorID)

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	return &AddNoteResult{TaskID: t.ID(), Status: t.Status().String()}, nil
}
