package usecases

import (
	"context"
	"errors"
	"time"

	"custodian/internal/domain/assignment"
	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/permission"
	"custodian/internal/domain/task"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/logger"
)

var errNotFound = errors.New("record not found")

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	ListFunc          func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, errNotFound
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListByActiveRole(ctx context.Context, role uservo.Role) ([]*user.User, error) {
	return nil, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(hash, password string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hash, password)
	}
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("mismatch")
}

type mockTokenService struct {
	GenerateFunc func(userID uint, username string) (string, time.Time, error)
}

func (m *mockTokenService) Generate(userID uint, username string) (string, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username)
	}
	return "token", time.Now().Add(time.Hour), nil
}

type roleChange struct {
	userID  uint
	role    string
	granted bool
}

type mockNotifier struct {
	changes []roleChange
}

func (m *mockNotifier) RoleChanged(ctx context.Context, u *user.User, role string, granted bool) {
	m.changes = append(m.changes, roleChange{userID: u.ID(), role: role, granted: granted})
}

type mockAssignmentRepository struct{}

func (m *mockAssignmentRepository) Replace(ctx context.Context, rec *assignment.Record) error {
	return nil
}

func (m *mockAssignmentRepository) Remove(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role, actorID uint) error {
	return nil
}

func (m *mockAssignmentRepository) CurrentHolder(ctx context.Context, kind assignvo.Kind, objectID uint, role assignvo.Role) (*assignment.Record, error) {
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
	return false, nil
}

func (m *mockAssignmentRepository) History(ctx context.Context, kind assignvo.Kind, objectID uint) ([]*assignment.HistoryEntry, error) {
	return nil, nil
}

type mockTaskRepository struct{}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error   { return nil }
func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error { return nil }
func (m *mockTaskRepository) GetByID(ctx context.Context, id uint) (*task.Task, error) {
	return nil, errNotFound
}

func (m *mockTaskRepository) ListByCase(ctx context.Context, caseID uint) ([]*task.Task, error) {
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error) {
	return nil, 0, nil
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

func newPermService() *permission.Service {
	return permission.NewService(permission.DefaultRegistry(
		permission.NewCheckers(&mockAssignmentRepository{}, &mockTaskRepository{}),
	))
}
