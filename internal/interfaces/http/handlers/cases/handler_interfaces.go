package cases

import (
	"context"

	"custodian/internal/application/casefile/usecases"
)

// Use case interfaces for CaseHandler - enables unit testing with mocks.

type createCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateCaseCommand) (*usecases.CreateCaseResult, error)
}

type getCaseUseCase interface {
	Execute(ctx context.Context, q usecases.GetCaseQuery) (*usecases.CaseDTO, error)
}

type listCasesUseCase interface {
	Execute(ctx context.Context, q usecases.ListCasesQuery) (*usecases.ListCasesResult, error)
}

type updateCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCaseCommand) (*usecases.CaseDTO, error)
}

type setCaseStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetCaseStatusCommand) (*usecases.SetCaseStatusResult, error)
}

type closeCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.CloseCaseCommand) (*usecases.CaseDTO, error)
}

type archiveCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.ArchiveCaseCommand) (*usecases.CaseDTO, error)
}

type authoriseCaseUseCase interface {
	Execute(ctx context.Context, cmd usecases.AuthoriseCaseCommand) (*usecases.AuthoriseCaseResult, error)
}

type assignCaseRoleUseCase interface {
	Execute(ctx context.Context, cmd usecases.AssignCaseRoleCommand) (*usecases.AssignCaseRoleResult, error)
}
