package tasks

import (
	"context"

	"custodian/internal/application/task/usecases"
)

// Use case interfaces for TaskHandler - enables unit testing with mocks.

type createTaskUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTaskCommand) (*usecases.CreateTaskResult, error)
}

type getTaskUseCase interface {
	Execute(ctx context.Context, q usecases.GetTaskQuery) (*usecases.TaskDTO, error)
}

type listTasksUseCase interface {
	Execute(ctx context.Context, q usecases.ListTasksQuery) (*usecases.ListTasksResult, error)
}

type updateTaskUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTaskCommand) (*usecases.TaskDTO, error)
}

type setTaskStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetTaskStatusCommand) (*usecases.SetTaskStatusResult, error)
}

type addNoteUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddNoteCommand) (*usecases.AddNoteResult, error)
}

type assignInvestigatorsUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignInvestigatorsCommand) (*usecases.AssignInvestigatorsResult, error)
}

type assignSelfUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignSelfCommand) (*usecases.AssignSelfResult, error)
}

type assignQAUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignQACommand) (*usecases.AssignQAResult, error)
}

type requestQAUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestQACommand) (*usecases.RequestQAResult, error)
}

type passQAUseCase interface {
	Execute(ctx context.Context, cmd usecases.PassQACommand) (*usecases.QAReviewResult, error)
}

type failQAUseCase interface {
	Execute(ctx context.Context, cmd usecases.FailQACommand) (*usecases.QAReviewResult, error)
}
