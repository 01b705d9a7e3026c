package usecases

import (
	"context"

	"custodian/internal/domain/evidence"
)

// Notifier delivers evidence notifications. RetentionReminder returns an
// error because the sweep must not mark a reminder sent when delivery
// failed.
type Notifier interface {
	EvidenceStatusChanged(ctx context.Context, e *evidence.Evidence, actorID uint)
	RetentionReminder(ctx context.Context, e *evidence.Evidence) error
}
