// Package history provides the generic audit-trail component shared by all
// auditable entities: capture an immutable snapshot of the comparable
// fields at each change, then diff the last two snapshots on demand to
// produce the audit log line.
package history

import "time"

// FieldAccessor names one comparable field and how to read it off the
// entity as a string.
type FieldAccessor[T any] struct {
	Name string
	Get  func(T) string
}

// Snapshot is an immutable capture of an entity's comparable fields.
type Snapshot struct {
	Values    map[string]string
	ActorID   uint
	Timestamp time.Time
}

// Change describes one field that differs between two snapshots.
type Change struct {
	Field string
	From  string
	To    string
}

// Recorder captures and diffs snapshots for one entity type. The field
// list fixes the diff order.
type Recorder[T any] struct {
	fields []FieldAccessor[T]
}

// NewRecorder creates a recorder over the given field table.
func NewRecorder[T any](fields []FieldAccessor[T]) *Recorder[T] {
	return &Recorder[T]{fields: fields}
}

// Capture takes a snapshot of the entity's comparable fields.
func (r *Recorder[T]) Capture(entity T, actorID uint) Snapshot {
	values := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		values[f.Name] = f.Get(entity)
	}
	return Snapshot{
		Values:    values,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	}
}

// Diff returns the fields that changed between two snapshots, in field
// table order.
func (r *Recorder[T]) Diff(prev, curr Snapshot) []Change {
	var changes []Change
	for _, f := range r.fields {
		from := prev.Values[f.Name]
		to := curr.Values[f.Name]
		if from != to {
			changes = append(changes, Change{Field: f.Name, From: from, To: to})
		}
	}
	return changes
}

// Trail is an append-only sequence of snapshots for one entity instance.
type Trail[T any] struct {
	recorder  *Recorder[T]
	snapshots []Snapshot
}

// NewTrail creates an empty trail over the recorder's field table.
func NewTrail[T any](recorder *Recorder[T]) *Trail[T] {
	return &Trail[T]{recorder: recorder}
}

// ReconstructTrail rebuilds a trail from persisted snapshots, oldest first.
func ReconstructTrail[T any](recorder *Recorder[T], snapshots []Snapshot) *Trail[T] {
	return &Trail[T]{recorder: recorder, snapshots: snapshots}
}

// Record appends a snapshot of the entity's current state.
func (t *Trail[T]) Record(entity T, actorID uint) Snapshot {
	snap := t.recorder.Capture(entity, actorID)
	t.snapshots = append(t.snapshots, snap)
	return snap
}

// Snapshots returns a copy of the trail, oldest first.
func (t *Trail[T]) Snapshots() []Snapshot {
	out := make([]Snapshot, len(t.snapshots))
	copy(out, t.snapshots)
	return out
}

// Len returns the number of snapshots recorded.
func (t *Trail[T]) Len() int {
	return len(t.snapshots)
}

// LastChange diffs the two most recent snapshots. With fewer than two
// snapshots there is nothing to compare.
func (t *Trail[T]) LastChange() []Change {
	if len(t.snapshots) < 2 {
		return nil
	}
	return t.recorder.Diff(t.snapshots[len(t.snapshots)-2], t.snapshots[len(t.snapshots)-1])
}
