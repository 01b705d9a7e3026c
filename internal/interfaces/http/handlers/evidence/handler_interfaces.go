package evidence

import (
	"context"

	"custodian/internal/application/evidence/usecases"
)

// Use case interfaces for EvidenceHandler - enables unit testing with mocks.

type createEvidenceUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateEvidenceCommand) (*usecases.CreateEvidenceResult, error)
}

type getEvidenceUseCase interface {
	Execute(ctx context.Context, q usecases.GetEvidenceQuery) (*usecases.EvidenceDTO, error)
}

type listEvidenceUseCase interface {
	Execute(ctx context.Context, q usecases.ListEvidenceQuery) (*usecases.ListEvidenceResult, error)
}

type updateEvidenceUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateEvidenceCommand) (*usecases.EvidenceDTO, error)
}

type setEvidenceStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetEvidenceStatusCommand) (*usecases.SetEvidenceStatusResult, error)
}

type custodyUseCase interface {
	Execute(ctx context.Context, cmd usecases.CustodyCommand) (*usecases.CustodyResult, error)
}
