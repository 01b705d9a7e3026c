package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
)

func TestUpdateCaseUseCase_Execute(t *testing.T) {
	manager := fixtureUser(t, 5, uservo.RoleCaseManager)

	setup := func(c *casefile.Case, log *recordingLogger) *UpdateCaseUseCase {
		caseRepo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*casefile.Case, error) {
				return c, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return manager, nil
			},
		}
		perm := newPermService(fixtureSlotRepo(c.ID(), assignvo.RolePrincipalCaseManager, 5), &mockTaskRepository{})
		return NewUpdateCaseUseCase(caseRepo, userRepo, perm, log)
	}

	t.Run("changed fields produce audit lines", func(t *testing.T) {
		c := fixtureOpenCase(t, 10)
		log := &recordingLogger{}
		uc := setup(c, log)

		result, err := uc.Execute(context.Background(), UpdateCaseCommand{
			CaseID:         10,
			Background:     "seized laptop",
			Location:       "evidence store B",
			Classification: "restricted",
			ActorID:        5,
		})

		require.NoError(t, err)
		assert.Equal(t, "evidence store B", result.Location)

		var audits []loggedEntry
		for _, entry := range log.infow {
			if entry.msg == "case field changed" {
				audits = append(audits, entry)
			}
		}
		require.Len(t, audits, 1)
		assert.Contains(t, audits[0].kv, "location")
		assert.Contains(t, audits[0].kv, "HQ")
		assert.Contains(t, audits[0].kv, "evidence store B")
	})

	t.Run("no-op update produces no audit lines", func(t *testing.T) {
		c := fixtureOpenCase(t, 10)
		log := &recordingLogger{}
		uc := setup(c, log)

		_, err := uc.Execute(context.Background(), UpdateCaseCommand{
			CaseID:         10,
			Background:     "seized laptop",
			Location:       "HQ",
			Classification: "restricted",
			ActorID:        5,
		})

		require.NoError(t, err)
		for _, entry := range log.infow {
			assert.NotEqual(t, "case field changed", entry.msg)
		}
	})
}
