package usecases

import (
	"context"
	"errors"

	"custodian/internal/domain/casefile"
	casevo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/domain/evidence"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"
	"custodian/internal/shared/logger"
)

var errNotFound = errors.New("record not found")

type mockEvidenceRepository struct {
	SaveFunc               func(ctx context.Context, e *evidence.Evidence) error
	UpdateFunc             func(ctx context.Context, e *evidence.Evidence) error
	GetByIDFunc            func(ctx context.Context, id uint) (*evidence.Evidence, error)
	ListDueForReminderFunc func(ctx context.Context) ([]*evidence.Evidence, error)
}

func (m *mockEvidenceRepository) Save(ctx context.Context, e *evidence.Evidence) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEvidenceRepository) Update(ctx context.Context, e *evidence.Evidence) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEvidenceRepository) GetByID(ctx context.Context, id uint) (*evidence.Evidence, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errNotFound
}

func (m *mockEvidenceRepository) GetByReference(ctx context.Context, reference string) (*evidence.Evidence, error) {
	return nil, errNotFound
}

func (m *mockEvidenceRepository) ListByCase(ctx context.Context, caseID uint) ([]*evidence.Evidence, error) {
	return nil, nil
}

func (m *mockEvidenceRepository) ListUnassociated(ctx context.Context) ([]*evidence.Evidence, error) {
	return nil, nil
}

func (m *mockEvidenceRepository) List(ctx context.Context, filter evidence.Filter) ([]*evidence.Evidence, int64, error) {
	return nil, 0, nil
}

func (m *mockEvidenceRepository) ListDueForReminder(ctx context.Context) ([]*evidence.Evidence, error) {
	if m.ListDueForReminderFunc != nil {
		return m.ListDueForReminderFunc(ctx)
	}
	return nil, nil
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

type mockNotifier struct {
	RetentionReminderFunc func(ctx context.Context, e *evidence.Evidence) error
	statusChanges         int
}

func (m *mockNotifier) EvidenceStatusChanged(ctx context.Context, e *evidence.Evidence, actorID uint) {
	m.statusChanges++
}

func (m *mockNotifier) RetentionReminder(ctx context.Context, e *evidence.Evidence) error {
	if m.RetentionReminderFunc != nil {
		return m.RetentionReminderFunc(ctx, e)
	}
	return nil
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
