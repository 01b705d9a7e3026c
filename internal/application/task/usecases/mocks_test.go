package usecases

import (
	"context"
	"errors"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	casevo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/logger"
)

var errNotFound = errors.New("record not found")

type mockTaskRepository struct {
	SaveFunc       func(ctx context.Context, t *task.Task) error
	UpdateFunc     func(ctx context.Context, t *task.Task) error
	GetByIDFunc    func(ctx context.Context, id uint) (*task.Task, error)
	ListByCaseFunc func(ctx context.Context, caseID uint) ([]*task.Task, error)
	ListFunc       func(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error)
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id uint) (*task.Task, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotFound
}

func (m *mockTaskRepository) ListByCase(ctx context.Context, caseID uint) ([]*task.Task, error) {
	if m.ListByCaseFunc != nil {
		return m.ListByCaseFunc(ctx, caseID)
	}
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCaseRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*casefile.Case, error)
}

func (m *mockCaseRepository) Save(ctx context.Context, c *casefile.Case) error   { return nil }
func (m *mockCaseRepository) Update(ctx context.Context, c *casefile.Case) error { return nil }

func (m *mockCaseRepository) GetByID(ctx context.Context, id uint) (*casefile.Case, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotFound
}

func (m *mockCaseRepository) GetByName(ctx context.Context, name string) (*casefile.Case, error) {
	return nil, errNotFound
}

func (m *mockCaseRepository) List(ctx context.Context, filter casefile.Filter) ([]*casefile.Case, int64, error) {
	return nil, 0, nil
}

func (m *mockCaseRepository) CountByStatus(ctx context.Context, status casevo.Status) (int64, error) {
	return 0, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, errNotFound
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) ListByActiveRole(ctx context.Context, role uservo.Role) ([]*user.User, error) {
	return nil, nil
}

type mockAssignmentRepository struct {
	ReplaceFunc       func(ctx context.Context, rec *assignment.Record) error
	CurrentHolderFunc func(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role) (*assignment.Record, error)
	HoldsRoleFunc     func(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role, userID uint) (bool, error)
}

func (m *mockAssignmentRepository) Replace(ctx context.Context, rec *assignment.Record) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, rec)
	}
	return nil
}

func (m *mockAssignmentRepository) Remove(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role, actorID uint) error {
	return nil
}

func (m *mockAssignmentRepository) CurrentHolder(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role) (*assignment.Record, error) {
	if m.CurrentHolderFunc != nil {
		return m.CurrentHolderFunc(ctx, kind, objectID, role)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) HoldersFor(ctx context.Context, kind assignvo.Kind, objectID uint) ([]*assignment.Record, error) {
	return nil, nil
}

func (m *mockAssignmentRepository) ObjectsForUser(ctx context.Context, kind assignvo.Kind, userID uint, role assignvo.Role) ([]uint, error) {
	return nil, nil
}

func (m *mockAssignmentRepository) IsAssigned(ctx context.Context, kind assignvo.Kind, objectID uint, userID uint) (bool, error) {
	return false, nil
}

func (m *mockAssignmentRepository) HoldsRole(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role, userID uint) (bool, error) {
	if m.HoldsRoleFunc != nil {
		return m.HoldsRoleFunc(ctx, kind, objectID, role, userID)
	}
	return false, nil
}

func (m *mockAssignmentRepository) History(ctx context.Context, kind assignvo.Kind, objectID uint) ([]*assignment.HistoryEntry, error) {
	return nil, nil
}

type mockNotifier struct {
	statusChanges int
	roleAssigns   int
}

func (m *mockNotifier) TaskStatusChanged(ctx context.Context, t *task.Task, actorID uint) {
	m.statusChanges++
}

func (m *mockNotifier) TaskRoleAssigned(ctx context.Context, t *task.Task, role string, userID uint) {
	m.roleAssigns++
}

// mockTxManager runs fn inline and tracks whether a transaction is open so
// repository mocks can assert their writes happen inside one.
type mockTxManager struct {
	calls  int
	active bool
	err    error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.active = true
	defer func() { m.active = false }()
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func newPermService(assignments assignment.Repository, tasks task.Repository) *permission.Service {
	return permission.NewService(permission.DefaultRegistry(permission.NewCheckers(assignments, tasks)))
}
