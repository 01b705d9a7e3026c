package assignment

import (
	"context"

	vo "custodian/internal/domain/assignment/valueobjects"
)

type Repository interface {
	// Replace installs the record's user as the slot holder. Any existing
	// holder of the same (kind, object, role) slot is removed first, with a
	// removed history row for them and an added history row for the new
	// holder. A slot never has more than one active holder.
	Replace(ctx context.Context, rec *Record) error

	// Remove vacates the slot, writing a removed history row for the
	// current holder if one exists.
	Remove(ctx context.Context, kind vo.Kind, objectID uint, role vo.Role, actorID uint) error

	// CurrentHolder returns the active record for the slot, or nil.
	CurrentHolder(ctx context.Context, kind vo.Kind, objectID uint, role vo.Role) (*Record, error)

	// HoldersFor returns all active records on the object.
	HoldersFor(ctx context.Context, kind vo.Kind, objectID uint) ([]*Record, error)

	// ObjectsForUser returns the object IDs on which the user actively
	// holds the role.
	ObjectsForUser(ctx context.Context, kind vo.Kind, userID uint, role vo.Role) ([]uint, error)

	// IsAssigned reports whether the user actively holds any slot on the
	// object.
	IsAssigned(ctx context.Context, kind vo.Kind, objectID uint, userID uint) (bool, error)

	// HoldsRole reports whether the user actively holds the given slot on
	// the object.
	HoldsRole(ctx context.Context, kind vo.Kind, objectID uint, role vo.Role, userID uint) (bool, error)

	// History returns the full add/remove timeline for the object, oldest
	// first.
	History(ctx context.Context, kind vo.Kind, objectID uint) ([]*HistoryEntry, error)
}
