// Package assignment models per-object role slots. One record binds one
// user to one slot on one case or task. Replacing a holder never mutates a
// record in place: the old record is closed out through the history log and
// a fresh record opens for the new holder, preserving the full add/remove
// timeline per slot.
package assignment

import (
	"fmt"
	"time"

	vo "custodian/internal/domain/assignment/valueobjects"
)

// Record is the current holder of one role slot on one object.
type Record struct {
	ID         uint
	Kind       vo.Kind
	ObjectID   uint
	Role       vo.Role
	UserID     uint
	AssignedBy uint
	Timestamp  time.Time
}

// HistoryEntry is one row of the append-only assignment history: an "added"
// row when a holder takes a slot and a "removed" row when they leave it.
type HistoryEntry struct {
	Kind      vo.Kind
	ObjectID  uint
	Role      vo.Role
	UserID    uint
	Removed   bool
	ActorID   uint
	Timestamp time.Time
}

// NewRecord validates and builds an assignment record.
func NewRecord(kind vo.Kind, objectID uint, role vo.Role, userID, assignedBy uint) (*Record, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown assignment kind: %q", kind)
	}
	if !role.ValidFor(kind) {
		return nil, fmt.Errorf("role %q is not valid for %s assignments", role, kind)
	}
	if objectID == 0 {
		return nil, fmt.Errorf("object ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if assignedBy == 0 {
		return nil, fmt.Errorf("assigner ID is required")
	}

	return &Record{
		Kind:       kind,
		ObjectID:   objectID,
		Role:       role,
		UserID:     userID,
		AssignedBy: assignedBy,
		Timestamp:  time.Now().UTC(),
	}, nil
}
