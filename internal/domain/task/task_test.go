package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "custodian/internal/domain/task/valueobjects"
)

func uintPtr(v uint) *uint { return &v }

func newValidTask(t *testing.T) *Task {
	t.Helper()
	tk, err := NewTask(1, "Disk image analysis", "image the seized laptop", "lab 2", 1)
	require.NoError(t, err)
	return tk
}

// qaTask returns a task in QA status with the given reviewer slots filled.
func qaTask(t *testing.T, principal, secondary *uint) *Task {
	t.Helper()
	tk := newValidTask(t)
	tk.AssignQA(principal, secondary, 1, "qa assigned")
	tk.RequestQA(2, "ready for review")
	return tk
}

func TestNewTask(t *testing.T) {
	tk := newValidTask(t)

	assert.Equal(t, uint(1), tk.CaseID())
	assert.Equal(t, vo.StatusCreated, tk.Status())
	require.Len(t, tk.StatusHistory(), 1)
	assert.False(t, tk.PrincQAPassed())
	assert.False(t, tk.SeconQAPassed())
}

func TestNewTask_InvalidInput(t *testing.T) {
	_, err := NewTask(0, "name", "", "", 1)
	assert.Error(t, err, "zero case ID")

	_, err = NewTask(1, "", "", "", 1)
	assert.Error(t, err, "empty name")

	_, err = NewTask(1, "name", "", "", 0)
	assert.Error(t, err, "zero creator")
}

func TestTask_SetStatus_MirrorsHistory(t *testing.T) {
	tk := newValidTask(t)

	for _, s := range vo.AllStatuses() {
		require.True(t, tk.SetStatus(s, 2, ""))
		history := tk.StatusHistory()
		assert.Equal(t, s, tk.Status())
		assert.Equal(t, tk.Status(), history[len(history)-1].Status)
	}
}

func TestTask_SetStatus_InvalidValueIsNoOp(t *testing.T) {
	tk := newValidTask(t)

	applied := tk.SetStatus(vo.Status("launched"), 2, "")

	assert.False(t, applied)
	assert.Equal(t, vo.StatusCreated, tk.Status())
	assert.Len(t, tk.StatusHistory(), 1)
}

func TestTask_AddNote_KeepsStatus(t *testing.T) {
	tk := newValidTask(t)
	tk.SetStatus(vo.StatusProgress, 2, "")

	tk.AddNote("imaging 40% done", 2)

	assert.Equal(t, vo.StatusProgress, tk.Status())
	history := tk.StatusHistory()
	last := history[len(history)-1]
	assert.Equal(t, vo.StatusProgress, last.Status)
	assert.Equal(t, "imaging 40% done", last.Note)
}

func TestTask_RequestQA(t *testing.T) {
	tk := newValidTask(t)
	tk.SetStatus(vo.StatusProgress, 2, "")

	tk.RequestQA(2, "ready")

	assert.Equal(t, vo.StatusQA, tk.Status())
	assert.False(t, tk.PrincQAPassed())
	assert.False(t, tk.SeconQAPassed())
}

func TestTask_PassQA_SingleReviewer(t *testing.T) {
	tk := qaTask(t, uintPtr(5), nil)

	ok := tk.PassQA("looks good", 5)

	require.True(t, ok)
	assert.Equal(t, vo.StatusDelivery, tk.Status())
	assert.False(t, tk.PrincQAPassed(), "flag resets once the round completes")
}

func TestTask_PassQA_UnknownAuthorIsNoOp(t *testing.T) {
	tk := qaTask(t, uintPtr(5), nil)

	ok := tk.PassQA("sneaky", 99)

	assert.False(t, ok)
	assert.Equal(t, vo.StatusQA, tk.Status())
	assert.False(t, tk.PrincQAPassed())
}

func TestTask_PassQA_RepeatCallsTransitionOnce(t *testing.T) {
	tk := qaTask(t, uintPtr(5), nil)

	require.True(t, tk.PassQA("first", 5))
	deliveries := 0
	for _, e := range tk.StatusHistory() {
		if e.Status == vo.StatusDelivery {
			deliveries++
		}
	}
	require.Equal(t, 1, deliveries)

	// A repeat pass outside the QA round must not re-fire the transition.
	ok := tk.PassQA("again", 5)
	assert.False(t, ok)

	deliveries = 0
	for _, e := range tk.StatusHistory() {
		if e.Status == vo.StatusDelivery {
			deliveries++
		}
	}
	assert.Equal(t, 1, deliveries)
}

func TestTask_PassQA_TwoReviewers_BothMustPass(t *testing.T) {
	tk := qaTask(t, uintPtr(5), uintPtr(6))

	require.True(t, tk.PassQA("principal happy", 5))
	assert.Equal(t, vo.StatusQA, tk.Status(), "one of two passes keeps the task in QA")
	assert.True(t, tk.PrincQAPassed())
	assert.False(t, tk.SeconQAPassed())

	require.True(t, tk.PassQA("secondary happy", 6))
	assert.Equal(t, vo.StatusDelivery, tk.Status())
	assert.False(t, tk.PrincQAPassed())
	assert.False(t, tk.SeconQAPassed())
}

func TestTask_FailQA_SingleRejectionForcesRework(t *testing.T) {
	tests := []struct {
		name   string
		passer uint
		failer uint
	}{
		{name: "pass then fail", passer: 5, failer: 6},
		{name: "fail after other reviewer passed first", passer: 6, failer: 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk := qaTask(t, uintPtr(5), uintPtr(6))

			require.True(t, tk.PassQA("fine by me", tc.passer))
			require.True(t, tk.FailQA("hash mismatch", tc.failer))

			assert.Equal(t, vo.StatusProgress, tk.Status())
			assert.False(t, tk.PrincQAPassed())
			assert.False(t, tk.SeconQAPassed())
		})
	}
}

func TestTask_FailQA_UnknownAuthorIsNoOp(t *testing.T) {
	tk := qaTask(t, uintPtr(5), uintPtr(6))

	ok := tk.FailQA("not my call", 99)

	assert.False(t, ok)
	assert.Equal(t, vo.StatusQA, tk.Status())
}

func TestTask_FailQA_OutsideQARoundIsNoOp(t *testing.T) {
	tk := newValidTask(t)
	tk.AssignQA(uintPtr(5), nil, 1, "qa assigned")
	tk.SetStatus(vo.StatusProgress, 2, "")

	ok := tk.FailQA("too early", 5)

	assert.False(t, ok)
	assert.Equal(t, vo.StatusProgress, tk.Status())
}

func TestTask_AssignQA_AttachesNoteWithoutStatusChange(t *testing.T) {
	tk := newValidTask(t)
	tk.SetStatus(vo.StatusAllocated, 2, "")
	before := len(tk.StatusHistory())

	tk.AssignQA(uintPtr(5), uintPtr(6), 3, "qa pair assigned")

	assert.Equal(t, vo.StatusAllocated, tk.Status())
	history := tk.StatusHistory()
	require.Len(t, history, before+1)
	assert.Equal(t, "qa pair assigned", history[len(history)-1].Note)
	require.NotNil(t, tk.PrincipalQAID())
	assert.Equal(t, uint(5), *tk.PrincipalQAID())
	require.NotNil(t, tk.SecondaryQAID())
	assert.Equal(t, uint(6), *tk.SecondaryQAID())
}

func TestTask_QARoundAfterRework(t *testing.T) {
	tk := qaTask(t, uintPtr(5), uintPtr(6))

	require.True(t, tk.PassQA("ok", 5))
	require.True(t, tk.FailQA("redo", 6))
	require.Equal(t, vo.StatusProgress, tk.Status())

	tk.RequestQA(2, "second round")
	require.True(t, tk.PassQA("ok now", 5))
	require.True(t, tk.PassQA("agreed", 6))

	assert.Equal(t, vo.StatusDelivery, tk.Status())
}
