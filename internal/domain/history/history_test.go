package history

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	name  string
	size  int
	owner string
}

func widgetFields() []FieldAccessor[*widget] {
	return []FieldAccessor[*widget]{
		{Name: "Name", Get: func(w *widget) string { return w.name }},
		{Name: "Size", Get: func(w *widget) string { return strconv.Itoa(w.size) }},
		{Name: "Owner", Get: func(w *widget) string { return w.owner }},
	}
}

func TestRecorder_CaptureAndDiff(t *testing.T) {
	rec := NewRecorder(widgetFields())
	w := &widget{name: "drive", size: 500, owner: "store"}

	before := rec.Capture(w, 1)
	w.name = "imaged drive"
	w.owner = "lab"
	after := rec.Capture(w, 2)

	changes := rec.Diff(before, after)
	require.Len(t, changes, 2)
	assert.Equal(t, Change{Field: "Name", From: "drive", To: "imaged drive"}, changes[0])
	assert.Equal(t, Change{Field: "Owner", From: "store", To: "lab"}, changes[1])
}

func TestRecorder_Diff_NoChanges(t *testing.T) {
	rec := NewRecorder(widgetFields())
	w := &widget{name: "drive", size: 500}

	a := rec.Capture(w, 1)
	b := rec.Capture(w, 1)

	assert.Empty(t, rec.Diff(a, b))
}

func TestTrail_LastChange(t *testing.T) {
	rec := NewRecorder(widgetFields())
	trail := NewTrail(rec)
	w := &widget{name: "drive", size: 500}

	assert.Nil(t, trail.LastChange(), "one snapshot has nothing to compare")

	trail.Record(w, 1)
	w.size = 1000
	trail.Record(w, 2)

	changes := trail.LastChange()
	require.Len(t, changes, 1)
	assert.Equal(t, "Size", changes[0].Field)
	assert.Equal(t, "500", changes[0].From)
	assert.Equal(t, "1000", changes[0].To)
	assert.Equal(t, 2, trail.Len())
}

func TestTrail_LastChangeTracksNewestPair(t *testing.T) {
	rec := NewRecorder(widgetFields())
	trail := NewTrail(rec)
	w := &widget{name: "a"}

	trail.Record(w, 1)
	w.name = "b"
	trail.Record(w, 1)
	w.name = "c"
	trail.Record(w, 1)

	changes := trail.LastChange()
	require.Len(t, changes, 1)
	assert.Equal(t, "b", changes[0].From)
	assert.Equal(t, "c", changes[0].To)
}

func TestReconstructTrail(t *testing.T) {
	rec := NewRecorder(widgetFields())
	w := &widget{name: "a"}
	snaps := []Snapshot{rec.Capture(w, 1)}
	w.name = "b"
	snaps = append(snaps, rec.Capture(w, 1))

	trail := ReconstructTrail(rec, snaps)

	require.Equal(t, 2, trail.Len())
	changes := trail.LastChange()
	require.Len(t, changes, 1)
	assert.Equal(t, "a", changes[0].From)
}
