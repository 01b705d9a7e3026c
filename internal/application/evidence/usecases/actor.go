package usecases

import (
	"context"
	"fmt"

	"custodian/internal/domain/casefile"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
)

func loadActor(ctx context.Context, users user.Repository, actorID uint) (*user.User, error) {
	if actorID == 0 {
		return nil, errors.NewUnauthorizedError("missing authenticated user")
	}
	actor, err := users.GetByID(ctx, actorID)
	if err != nil {
		return nil, errors.NewUnauthorizedError("authenticated user not found")
	}
	return actor, nil
}

// loadEvidenceWithCase loads the evidence and, when it is associated, its
// parent case. Unassociated evidence carries a nil parent and skips the
// parent-derived gates.
func loadEvidenceWithCase(ctx context.Context, items evidence.Repository, cases casefile.Repository, evidenceID uint) (*evidence.Evidence, *casefile.Case, error) {
	e, err := items.GetByID(ctx, evidenceID)
	if err != nil {
		return nil, nil, errors.NewNotFoundError(fmt.Sprintf("evidence %d not found", evidenceID))
	}
	if e.CaseID() == nil {
		return e, nil, nil
	}
	parent, err := cases.GetByID(ctx, *e.CaseID())
	if err != nil {
		return nil, nil, errors.NewNotFoundError(fmt.Sprintf("case %d not found", *e.CaseID()))
	}
	return e, parent, nil
}
