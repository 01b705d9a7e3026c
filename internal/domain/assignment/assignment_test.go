package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "custodian/internal/domain/assignment/valueobjects"
)

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord(vo.KindTask, 3, vo.RolePrincipalQA, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, vo.KindTask, rec.Kind)
	assert.Equal(t, uint(3), rec.ObjectID)
	assert.Equal(t, uint(5), rec.UserID)
	assert.False(t, rec.Timestamp.IsZero())
}

func TestNewRecord_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		kind     vo.Kind
		objectID uint
		role     vo.Role
		userID   uint
		actorID  uint
	}{
		{name: "unknown kind", kind: vo.Kind("evidence"), objectID: 1, role: vo.RoleRequester, userID: 1, actorID: 1},
		{name: "task role on a case", kind: vo.KindCase, objectID: 1, role: vo.RolePrincipalQA, userID: 1, actorID: 1},
		{name: "case role on a task", kind: vo.KindTask, objectID: 1, role: vo.RoleAuthoriser, userID: 1, actorID: 1},
		{name: "zero object", kind: vo.KindCase, objectID: 0, role: vo.RoleRequester, userID: 1, actorID: 1},
		{name: "zero user", kind: vo.KindCase, objectID: 1, role: vo.RoleRequester, userID: 0, actorID: 1},
		{name: "zero assigner", kind: vo.KindCase, objectID: 1, role: vo.RoleRequester, userID: 1, actorID: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRecord(tc.kind, tc.objectID, tc.role, tc.userID, tc.actorID)
			assert.Error(t, err)
		})
	}
}

func TestParseRole(t *testing.T) {
	role, err := vo.ParseRole("principal_investigator", vo.KindTask)
	require.NoError(t, err)
	assert.Equal(t, vo.RolePrincipalInvestigator, role)

	_, err = vo.ParseRole("principal_investigator", vo.KindCase)
	assert.Error(t, err, "task role rejected for case kind")

	_, err = vo.ParseRole("head_chef", vo.KindTask)
	assert.Error(t, err, "unknown role fails loudly")
}

func TestRole_Sets(t *testing.T) {
	for _, r := range vo.CaseRoles() {
		assert.True(t, r.ValidFor(vo.KindCase), r)
		assert.False(t, r.ValidFor(vo.KindTask), r)
	}
	for _, r := range vo.TaskRoles() {
		assert.True(t, r.ValidFor(vo.KindTask), r)
		assert.False(t, r.ValidFor(vo.KindCase), r)
	}
	assert.Len(t, vo.QARoles(), 2)
	assert.Len(t, vo.InvestigatorRoles(), 2)
}
