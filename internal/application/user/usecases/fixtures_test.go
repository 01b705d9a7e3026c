package usecases

import (
	"context"
	"testing"

	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"

	"github.com/stretchr/testify/require"
)

func fixtureUser(t *testing.T, id uint, roles ...uservo.Role) *user.User {
	t.Helper()
	u, err := user.NewUser("user", "Grace", "Hopper", "grace@example.com", "hashed:s3cretpass")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	for _, role := range roles {
		_, err := u.GrantRole(role, 1)
		require.NoError(t, err)
	}
	return u
}

// userDirectory wires a fixed set of users into a repository mock.
func userDirectory(users ...*user.User) *mockUserRepository {
	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, errNotFound
		},
	}
}
