package usecases

import (
	"context"
	"time"

	"custodian/internal/domain/user"
)

// PasswordHasher abstracts the bcrypt hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenService issues access tokens for authenticated users.
type TokenService interface {
	Generate(userID uint, username string) (token string, expiresAt time.Time, err error)
}

// Notifier delivers account notifications.
type Notifier interface {
	RoleChanged(ctx context.Context, u *user.User, role string, granted bool)
}
