package casefile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "custodian/internal/domain/casefile/valueobjects"
)

// newValidCase creates a case with sensible defaults for testing.
func newValidCase(t *testing.T) *Case {
	t.Helper()
	c, err := NewCase("Fraud enquiry 2026-014", "suspected invoice fraud", "HQ lab", "restricted", false, 1)
	require.NoError(t, err)
	return c
}

func TestNewCase(t *testing.T) {
	c := newValidCase(t)

	assert.Equal(t, "Fraud enquiry 2026-014", c.Name())
	assert.False(t, c.IsPrivate())
	assert.Equal(t, vo.StatusPending, c.Status(), "new case must await authorisation")
	require.Len(t, c.StatusHistory(), 1)
	assert.Equal(t, vo.StatusPending, c.StatusHistory()[0].Status)
	assert.Empty(t, c.Authorisations(), "authorisation log starts empty")
	assert.False(t, c.IsAuthorised())
}

func TestNewCase_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		caseName string
		creator  uint
	}{
		{name: "empty name", caseName: "", creator: 1},
		{name: "name too long", caseName: strings.Repeat("a", 201), creator: 1},
		{name: "zero creator", caseName: "valid", creator: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCase(tc.caseName, "", "", "", false, tc.creator)
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestCase_SetStatus_MirrorsHistory(t *testing.T) {
	c := newValidCase(t)

	for _, s := range vo.AllStatuses() {
		applied := c.SetStatus(s, 2, "")
		require.True(t, applied)
		history := c.StatusHistory()
		assert.Equal(t, s, c.Status())
		assert.Equal(t, c.Status(), history[len(history)-1].Status,
			"current status must equal the newest history entry")
	}
}

func TestCase_SetStatus_InvalidValueIsNoOp(t *testing.T) {
	c := newValidCase(t)
	before := len(c.StatusHistory())

	applied := c.SetStatus(vo.Status("exploded"), 2, "oops")

	assert.False(t, applied)
	assert.Equal(t, vo.StatusPending, c.Status())
	assert.Len(t, c.StatusHistory(), before, "no history row for an invalid status")
}

func TestCase_Authorise_Granted(t *testing.T) {
	c := newValidCase(t)

	applied := c.Authorise(9, "approved by duty manager", vo.AuthorisationGranted)

	require.True(t, applied)
	assert.Equal(t, vo.StatusCreated, c.Status())
	require.Len(t, c.Authorisations(), 1)
	assert.Equal(t, vo.AuthorisationGranted, c.Authorisations()[0].Code)
	assert.True(t, c.IsAuthorised())
}

func TestCase_Authorise_Refused(t *testing.T) {
	c := newValidCase(t)

	c.Authorise(9, "insufficient grounds", vo.AuthorisationRefused)

	assert.Equal(t, vo.StatusRejected, c.Status())
	assert.False(t, c.IsAuthorised())
	require.NotNil(t, c.LatestAuthorisation())
	assert.Equal(t, vo.AuthorisationRefused, c.LatestAuthorisation().Code)
}

func TestCase_Authorise_PendingHasNoStatusSideEffect(t *testing.T) {
	c := newValidCase(t)

	c.Authorise(9, "queued for review", vo.AuthorisationPending)

	assert.Equal(t, vo.StatusPending, c.Status())
	assert.Len(t, c.StatusHistory(), 1)
	assert.Len(t, c.Authorisations(), 1)
}

func TestCase_Authorise_InvalidCodeIsNoOp(t *testing.T) {
	c := newValidCase(t)

	applied := c.Authorise(9, "", vo.AuthorisationCode("MAYBE"))

	assert.False(t, applied)
	assert.Empty(t, c.Authorisations())
	assert.Equal(t, vo.StatusPending, c.Status())
}

// Pending -> authorise(AUTH) -> created -> open: three status rows in total.
func TestCase_AuthoriseThenOpenScenario(t *testing.T) {
	c := newValidCase(t)

	c.Authorise(9, "ok", vo.AuthorisationGranted)
	c.SetStatus(vo.StatusOpen, 3, "")

	history := c.StatusHistory()
	require.Len(t, history, 3)
	assert.Equal(t, vo.StatusPending, history[0].Status)
	assert.Equal(t, vo.StatusCreated, history[1].Status)
	assert.Equal(t, vo.StatusOpen, history[2].Status)
	assert.Equal(t, vo.StatusOpen, c.Status())
	require.Len(t, c.Authorisations(), 1)
}

func TestCase_Close(t *testing.T) {
	c := newValidCase(t)
	c.Authorise(9, "ok", vo.AuthorisationGranted)
	c.SetStatus(vo.StatusOpen, 3, "")

	c.Close("work complete", 3)

	assert.Equal(t, vo.StatusClosed, c.Status())
	history := c.StatusHistory()
	last := history[len(history)-1]
	assert.Equal(t, "work complete", last.Reason)
	assert.Equal(t, uint(3), last.ActorID)
}

func TestCase_IsAuthorised_FollowsLatestEntry(t *testing.T) {
	c := newValidCase(t)

	c.Authorise(9, "ok", vo.AuthorisationGranted)
	assert.True(t, c.IsAuthorised())

	c.Authorise(9, "revoked after review", vo.AuthorisationRefused)
	assert.False(t, c.IsAuthorised(), "latest entry decides the outcome")
}

func TestReconstructCase(t *testing.T) {
	now := time.Now().UTC()
	history := []StatusEntry{
		{Status: vo.StatusPending, ActorID: 1, Timestamp: now},
		{Status: vo.StatusCreated, ActorID: 9, Timestamp: now},
	}
	auths := []AuthorisationEntry{
		{Code: vo.AuthorisationGranted, AuthoriserID: 9, Timestamp: now},
	}

	c, err := ReconstructCase(7, "Old case", true, "", "", "", vo.StatusCreated, history, auths, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), c.ID())
	assert.True(t, c.IsPrivate())
	assert.True(t, c.IsAuthorised())
	assert.Equal(t, vo.StatusCreated, c.Status())
}

func TestReconstructCase_Invalid(t *testing.T) {
	now := time.Now().UTC()

	_, err := ReconstructCase(0, "x", false, "", "", "", vo.StatusOpen, nil, nil, now, now)
	assert.Error(t, err, "zero ID")

	_, err = ReconstructCase(1, "x", false, "", "", "", vo.Status("bogus"), nil, nil, now, now)
	assert.Error(t, err, "invalid status")
}

func TestCase_UpdateDetails(t *testing.T) {
	c := newValidCase(t)

	err := c.UpdateDetails("Renamed", "new background", "offsite", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Name())
	assert.Equal(t, "secret", c.Classification())

	err = c.UpdateDetails("", "", "", "")
	assert.Error(t, err)
}
