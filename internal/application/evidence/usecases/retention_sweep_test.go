package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"custodian/internal/domain/evidence"
	vo "custodian/internal/domain/evidence/valueobjects"
)

func archivedEvidence(t *testing.T, id uint, dueOffset time.Duration) *evidence.Evidence {
	t.Helper()
	e, err := evidence.NewEvidence(nil, "hard drive", "seized disk", "field team", 1)
	require.NoError(t, err)
	require.NoError(t, e.SetID(id))
	require.True(t, e.SetStatus(vo.StatusArchived, 1, "case closed", 6))
	e.ForceRetentionDate(time.Now().UTC().Add(dueOffset))
	return e
}

func TestRetentionSweepUseCase_Execute(t *testing.T) {
	t.Run("sends one reminder per due item and marks it sent", func(t *testing.T) {
		due := archivedEvidence(t, 1, -time.Hour)
		notDueYet := archivedEvidence(t, 2, 24*time.Hour)

		repo := &mockEvidenceRepository{
			ListDueForReminderFunc: func(ctx context.Context) ([]*evidence.Evidence, error) {
				return []*evidence.Evidence{due, notDueYet}, nil
			},
		}
		var reminded []uint
		notifier := &mockNotifier{
			RetentionReminderFunc: func(ctx context.Context, e *evidence.Evidence) error {
				reminded = append(reminded, e.ID())
				return nil
			},
		}
		uc := NewRetentionSweepUseCase(repo, notifier, &mockLogger{})

		result, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, result.Examined)
		assert.Equal(t, 1, result.Sent)
		assert.Zero(t, result.Failed)
		assert.Equal(t, []uint{1}, reminded)
		assert.True(t, due.RetentionReminderSent())
		assert.False(t, notDueYet.RetentionReminderSent())
	})

	t.Run("failed delivery leaves the item due for retry", func(t *testing.T) {
		due := archivedEvidence(t, 1, -time.Hour)
		repo := &mockEvidenceRepository{
			ListDueForReminderFunc: func(ctx context.Context) ([]*evidence.Evidence, error) {
				return []*evidence.Evidence{due}, nil
			},
		}
		notifier := &mockNotifier{
			RetentionReminderFunc: func(ctx context.Context, e *evidence.Evidence) error {
				return fmt.Errorf("smtp unreachable")
			},
		}
		uc := NewRetentionSweepUseCase(repo, notifier, &mockLogger{})

		result, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Zero(t, result.Sent)
		assert.False(t, due.RetentionReminderSent())
		assert.True(t, due.ReminderDue(time.Now().UTC()))
	})

	t.Run("sweep is idempotent across runs", func(t *testing.T) {
		due := archivedEvidence(t, 1, -time.Hour)
		repo := &mockEvidenceRepository{
			ListDueForReminderFunc: func(ctx context.Context) ([]*evidence.Evidence, error) {
				if due.RetentionReminderSent() {
					return nil, nil
				}
				return []*evidence.Evidence{due}, nil
			},
		}
		sent := 0
		notifier := &mockNotifier{
			RetentionReminderFunc: func(ctx context.Context, e *evidence.Evidence) error {
				sent++
				return nil
			},
		}
		uc := NewRetentionSweepUseCase(repo, notifier, &mockLogger{})

		_, err := uc.Execute(context.Background())
		require.NoError(t, err)
		_, err = uc.Execute(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, sent)
	})
}
