package usecases

import (
	"context"
	"testing"

	assignvo "custodian/internal/domain/assignment/valueobjects"
	"custodian/internal/domain/casefile"
	casevo "custodian/internal/domain/casefile/valueobjects"
	"custodian/internal/domain/user"
	uservo "custodian/internal/domain/user/valueobjects"

	"github.com/stretchr/testify/require"
)

func fixtureUser(t *testing.T, id uint, roles ...uservo.Role) *user.User {
	t.Helper()
	u, err := user.NewUser("actor", "Ada", "Lovelace", "ada@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	for _, role := range roles {
		_, err := u.GrantRole(role, 1)
		require.NoError(t, err)
	}
	return u
}

func fixturePendingCase(t *testing.T, id uint) *casefile.Case {
	t.Helper()
	c, err := casefile.NewCase("Operation Kestrel", "seized laptop", "HQ", "restricted", false, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	return c
}

func fixtureOpenCase(t *testing.T, id uint) *casefile.Case {
	t.Helper()
	c := fixturePendingCase(t, id)
	require.True(t, c.Authorise(2, "approved", casevo.AuthorisationGranted))
	require.True(t, c.SetStatus(casevo.StatusOpen, 1, "work started"))
	return c
}

// fixtureSlotRepo grants userID exactly one slot on one case.
func fixtureSlotRepo(caseID uint, role assignvo.Role, userID uint) *mockAssignmentRepository {
	return &mockAssignmentRepository{
		HoldsRoleFunc: func(ctx context.Context, kind assignvo.Kind, objectID uint, r assignvo.Role, uid uint) (bool, error) {
			return kind == assignvo.KindCase && objectID == caseID && r == role && uid == userID, nil
		},
	}
}
