package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	casevo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/errors"
)

func TestAuthoriseCaseUseCase_Execute(t *testing.T) {
	authoriser := fixtureUser(t, 5, uservo.RoleAuthoriser)

	setup := func(c *casefile.Case, actor *user.User) (*AuthoriseCaseUseCase, *mockCaseRepository, *mockNotifier) {
		caseRepo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*casefile.Case, error) {
				return c, nil
			},
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return actor, nil
			},
		}
		notifier := &mockNotifier{}
		perm := newPermService(fixtureSlotRepo(c.ID(), assignvo.RoleAuthoriser, 5), &mockTaskRepository{})
		uc := NewAuthoriseCaseUseCase(caseRepo, userRepo, perm, notifier, &mockLogger{})
		return uc, caseRepo, notifier
	}

	t.Run("granting moves case to created", func(t *testing.T) {
		c := fixturePendingCase(t, 10)
		uc, caseRepo, notifier := setup(c, authoriser)

		var updated *casefile.Case
		caseRepo.UpdateFunc = func(ctx context.Context, c *casefile.Case) error {
			updated = c
			return nil
		}

		result, err := uc.Execute(context.Background(), AuthoriseCaseCommand{
			CaseID: 10, Granted: true, Reason: "legitimate request", ActorID: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, casevo.AuthorisationGranted.String(), result.Code)
		assert.Equal(t, casevo.StatusCreated.String(), result.Status)
		require.NotNil(t, updated)
		assert.True(t, updated.IsAuthorised())
		require.Len(t, notifier.calls, 1)
		assert.Equal(t, "authorisation", notifier.calls[0].kind)
	})

	t.Run("refusing moves case to rejected", func(t *testing.T) {
		c := fixturePendingCase(t, 10)
		uc, _, _ := setup(c, authoriser)

		result, err := uc.Execute(context.Background(), AuthoriseCaseCommand{
			CaseID: 10, Granted: false, Reason: "no legal basis", ActorID: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, casevo.StatusRejected.String(), result.Status)
		assert.False(t, c.IsAuthorised())
	})

	t.Run("administrator has no bypass", func(t *testing.T) {
		c := fixturePendingCase(t, 10)
		admin := fixtureUser(t, 9, uservo.RoleAdministrator)
		uc, caseRepo, _ := setup(c, admin)
		caseRepo.UpdateFunc = func(ctx context.Context, c *casefile.Case) error {
			t.Fatal("update must not be reached")
			return nil
		}

		_, err := uc.Execute(context.Background(), AuthoriseCaseCommand{
			CaseID: 10, Granted: true, ActorID: 9,
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("already decided case cannot be authorised again", func(t *testing.T) {
		c := fixtureOpenCase(t, 10)
		uc, _, _ := setup(c, authoriser)

		_, err := uc.Execute(context.Background(), AuthoriseCaseCommand{
			CaseID: 10, Granted: true, ActorID: 5,
		})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
