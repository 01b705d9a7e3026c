package usecases

import (
	"context"
	"time"

	"custodian/internal/domain/evidence"
	"custodian/internal/shared/logger"
)

type RetentionSweepResult struct {
	Examined int
	Sent     int
	Failed   int
}

// RetentionSweepUseCase runs unattended from the worker. It collects
// archived evidence whose retention date has elapsed, sends one reminder
// per item and marks it sent. Items whose reminder fails stay due and are
// retried on the next sweep.
type RetentionSweepUseCase struct {
	evidenceRepo evidence.Repository
	notifier     Notifier
	logger       logger.Interface
}

func NewRetentionSweepUseCase(
	evidenceRepo evidence.Repository,
	notifier Notifier,
	logger logger.Interface,
) *RetentionSweepUseCase {
	return &RetentionSweepUseCase{
		evidenceRepo: evidenceRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (uc *RetentionSweepUseCase) Execute(ctx context.Context) (*RetentionSweepResult, error) {
	due, err := uc.evidenceRepo.ListDueForReminder(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list due evidence", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	result := &RetentionSweepResult{Examined: len(due)}
	for _, e := range due {
		if !e.ReminderDue(now) {
			continue
		}
		if err := uc.notifier.RetentionReminder(ctx, e); err != nil {
			uc.logger.Errorw("retention reminder failed",
				"evidence_id", e.ID(), "reference", e.Reference(), "error", err)
			result.Failed++
			continue
		}
		e.MarkReminderSent()
		if err := uc.evidenceRepo.Update(ctx, e); err != nil {
			uc.logger.Errorw("failed to mark reminder sent",
				"evidence_id", e.ID(), "error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	uc.logger.Infow("retention sweep finished",
		"examined", result.Examined, "sent", result.Sent, "failed", result.Failed)
	return result, nil
}
