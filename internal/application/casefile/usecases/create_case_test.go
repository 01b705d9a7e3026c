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
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/errors"
)

func TestCreateCaseUseCase_Execute(t *testing.T) {
	requester := fixtureUser(t, 5, uservo.RoleRequester)

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return requester, nil
		},
	}

	t.Run("creates a pending case with requester slot", func(t *testing.T) {
		caseRepo := &mockCaseRepository{
			SaveFunc: func(ctx context.Context, c *casefile.Case) error {
				return c.SetID(42)
			},
		}
		var replaced []*assignment.Record
		assignments := &mockAssignmentRepository{
			ReplaceFunc: func(ctx context.Context, rec *assignment.Record) error {
				replaced = append(replaced, rec)
				return nil
			},
		}
		perm := newPermService(assignments, &mockTaskRepository{})
		uc := NewCreateCaseUseCase(caseRepo, userRepo, assignments, &mockTxManager{}, perm, &mockNotifier{}, &mockLogger{})

		authoriserID := uint(7)
		result, err := uc.Execute(context.Background(), CreateCaseCommand{
			Name:           "Operation Kestrel",
			Background:     "seized laptop",
			Location:       "HQ",
			Classification: "restricted",
			AuthoriserID:   &authoriserID,
			ActorID:        5,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.CaseID)
		assert.Equal(t, casevo.StatusPending.String(), result.Status)

		require.Len(t, replaced, 2)
		assert.Equal(t, assignvo.RoleRequester, replaced[0].Role)
		assert.Equal(t, uint(5), replaced[0].UserID)
		assert.Equal(t, assignvo.RoleAuthoriser, replaced[1].Role)
		assert.Equal(t, uint(7), replaced[1].UserID)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		existing := fixturePendingCase(t, 1)
		caseRepo := &mockCaseRepository{
			GetByNameFunc: func(ctx context.Context, name string) (*casefile.Case, error) {
				return existing, nil
			},
		}
		assignments := &mockAssignmentRepository{}
		perm := newPermService(assignments, &mockTaskRepository{})
		uc := NewCreateCaseUseCase(caseRepo, userRepo, assignments, &mockTxManager{}, perm, &mockNotifier{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateCaseCommand{
			Name: "Operation Kestrel", ActorID: 5,
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("user without a creating role is denied", func(t *testing.T) {
		qa := fixtureUser(t, 6, uservo.RoleQA)
		repo := &mockUserRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return qa, nil
			},
		}
		assignments := &mockAssignmentRepository{}
		perm := newPermService(assignments, &mockTaskRepository{})
		uc := NewCreateCaseUseCase(&mockCaseRepository{}, repo, assignments, &mockTxManager{}, perm, &mockNotifier{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateCaseCommand{Name: "X", ActorID: 6})

		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("case row and slots share one transaction", func(t *testing.T) {
		tx := &mockTxManager{}
		caseRepo := &mockCaseRepository{
			SaveFunc: func(ctx context.Context, c *casefile.Case) error {
				assert.True(t, tx.active, "case save outside transaction")
				return c.SetID(42)
			},
		}
		assignments := &mockAssignmentRepository{
			ReplaceFunc: func(ctx context.Context, rec *assignment.Record) error {
				assert.True(t, tx.active, "slot write outside transaction")
				return nil
			},
		}
		perm := newPermService(assignments, &mockTaskRepository{})
		uc := NewCreateCaseUseCase(caseRepo, userRepo, assignments, tx, perm, &mockNotifier{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateCaseCommand{Name: "Operation Kestrel", ActorID: 5})

		require.NoError(t, err)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("slot write failure aborts creation", func(t *testing.T) {
		caseRepo := &mockCaseRepository{
			SaveFunc: func(ctx context.Context, c *casefile.Case) error {
				return c.SetID(42)
			},
		}
		assignments := &mockAssignmentRepository{
			ReplaceFunc: func(ctx context.Context, rec *assignment.Record) error {
				return errNotFound
			},
		}
		perm := newPermService(assignments, &mockTaskRepository{})
		uc := NewCreateCaseUseCase(caseRepo, userRepo, assignments, &mockTxManager{}, perm, &mockNotifier{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateCaseCommand{Name: "Operation Kestrel", ActorID: 5})

		require.Error(t, err)
	})
}
