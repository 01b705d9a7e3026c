package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	casevo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/domain/task"
	taskvo "custodian/internal/domain/task/valueobjects"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/errors"
)

func TestAssignSelfUseCase_Execute(t *testing.T) {
	investigator, err := user.NewUser("inv", "Iris", "Vale", "iris@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, investigator.SetID(5))
	_, err = investigator.GrantRole(uservo.RoleInvestigator, 1)
	require.NoError(t, err)

	newFixtures := func(t *testing.T) (*task.Task, *casefile.Case) {
		t.Helper()
		c, err := casefile.NewCase("Operation Kestrel", "background", "HQ", "restricted", false, 1)
		require.NoError(t, err)
		require.NoError(t, c.SetID(10))
		require.True(t, c.Authorise(2, "approved", casevo.AuthorisationGranted))
		require.True(t, c.SetStatus(casevo.StatusOpen, 1, ""))

		tk, err := task.NewTask(10, "Disk imaging", "background", "lab", 1)
		require.NoError(t, err)
		require.NoError(t, tk.SetID(77))
		return tk, c
	}

	setup := func(tk *task.Task, c *casefile.Case, assignments *mockAssignmentRepository, tx *mockTxManager) *AssignSelfUseCase {
		taskRepo := &mockTaskRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
		}
		caseRepo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*casefile.Case, error) { return c, nil },
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return investigator, nil },
		}
		perm := newPermService(assignments, taskRepo)
		return NewAssignSelfUseCase(taskRepo, caseRepo, userRepo, assignments, tx, perm, &mockNotifier{}, &mockLogger{})
	}

	t.Run("claims an unstarted task", func(t *testing.T) {
		tk, c := newFixtures(t)
		var claimed *assignment.Record
		assignments := &mockAssignmentRepository{
			ReplaceFunc: func(ctx context.Context, rec *assignment.Record) error {
				claimed = rec
				return nil
			},
		}
		uc := setup(tk, c, assignments, &mockTxManager{})

		result, err := uc.Execute(context.Background(), AssignSelfCommand{TaskID: 77, ActorID: 5})

		require.NoError(t, err)
		assert.Equal(t, taskvo.StatusAllocated.String(), result.Status)
		require.NotNil(t, claimed)
		assert.Equal(t, assignvo.RolePrincipalInvestigator, claimed.Role)
		assert.Equal(t, uint(5), claimed.UserID)
	})

	t.Run("occupied slot cannot be claimed", func(t *testing.T) {
		tk, c := newFixtures(t)
		existing, err := assignment.NewRecord(assignvo.KindTask, 77, assignvo.RolePrincipalInvestigator, 9, 1)
		require.NoError(t, err)
		assignments := &mockAssignmentRepository{
			CurrentHolderFunc: func(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role) (*assignment.Record, error) {
				return existing, nil
			},
		}
		uc := setup(tk, c, assignments, &mockTxManager{})

		_, err = uc.Execute(context.Background(), AssignSelfCommand{TaskID: 77, ActorID: 5})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("started task cannot be claimed", func(t *testing.T) {
		tk, c := newFixtures(t)
		require.True(t, tk.SetStatus(taskvo.StatusProgress, 1, "already underway"))
		uc := setup(tk, c, &mockAssignmentRepository{}, &mockTxManager{})

		_, err := uc.Execute(context.Background(), AssignSelfCommand{TaskID: 77, ActorID: 5})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("claim and allocation share one transaction", func(t *testing.T) {
		tk, c := newFixtures(t)
		tx := &mockTxManager{}
		assignments := &mockAssignmentRepository{
			ReplaceFunc: func(ctx context.Context, rec *assignment.Record) error {
				assert.True(t, tx.active, "slot claim outside transaction")
				return nil
			},
		}
		taskRepo := &mockTaskRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*task.Task, error) { return tk, nil },
			UpdateFunc: func(ctx context.Context, updated *task.Task) error {
				assert.True(t, tx.active, "status write outside transaction")
				return nil
			},
		}
		caseRepo := &mockCaseRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*casefile.Case, error) { return c, nil },
		}
		userRepo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return investigator, nil },
		}
		perm := newPermService(assignments, taskRepo)
		uc := NewAssignSelfUseCase(taskRepo, caseRepo, userRepo, assignments, tx, perm, &mockNotifier{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), AssignSelfCommand{TaskID: 77, ActorID: 5})

		require.NoError(t, err)
		assert.Equal(t, 1, tx.calls)
	})
}
