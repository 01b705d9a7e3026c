package usecases

import (
	"context"
	"time"

	"custodian/internal/domain/user"
	"custodian/internal/shared/errors"
	"custodian/internal/shared/logger"
)

type AuthenticateCommand struct {
	Username string
	Password string
}

type AuthenticateResult struct {
	UserID    uint
	Username  string
	Token     string
	ExpiresAt time.Time
	Roles     []string
}

type AuthenticateUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewAuthenticateUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*AuthenticateResult, error) {
	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil || u == nil {
		// Same error for unknown user and wrong password.
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, err := uc.tokens.Generate(u.ID(), u.Username())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	roles := make([]string, 0)
	for _, role := range u.ActiveRoles() {
		roles = append(roles, role.String())
	}

	uc.logger.Infow("user authenticated", "user_id", u.ID(), "username", u.Username())
	return &AuthenticateResult{
		UserID:    u.ID(),
		Username:  u.Username(),
		Token:     token,
		ExpiresAt: expiresAt,
		Roles:     roles,
	}, nil
}
