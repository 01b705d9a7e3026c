// Package casefile contains the case aggregate: the unit of forensic work
// that tasks and evidence attach to. Status and authorisation changes are
// append-only logs; the current status is mirrored onto the aggregate and
// always matches the most recent log entry.
package casefile

import (
	"fmt"
	"time"

	vo "custodian/internal/domain/casefile/valueobjects"
)

// StatusEntry is one row of the append-only status history.
type StatusEntry struct {
	Status    vo.Status
	Reason    string
	ActorID   uint
	Timestamp time.Time
}

// AuthorisationEntry is one row of the append-only authorisation log.
type AuthorisationEntry struct {
	Code         vo.AuthorisationCode
	Reason       string
	AuthoriserID uint
	Timestamp    time.Time
}

type Case struct {
	id             uint
	name           string
	private        bool
	background     string
	location       string
	classification string
	currentStatus  vo.Status
	statusHistory  []StatusEntry
	authorisations []AuthorisationEntry
	createdAt      time.Time
	updatedAt      time.Time
}

// NewCase creates a case awaiting authorisation. The status history is
// seeded with a single pending entry; the authorisation log starts empty.
func NewCase(name, background, location, classification string, private bool, creatorID uint) (*Case, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("case name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("case name exceeds maximum length of 200 characters")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()
	c := &Case{
		name:           name,
		private:        private,
		background:     background,
		location:       location,
		classification: classification,
		currentStatus:  vo.StatusPending,
		createdAt:      now,
		updatedAt:      now,
	}
	c.statusHistory = append(c.statusHistory, StatusEntry{
		Status:    vo.StatusPending,
		ActorID:   creatorID,
		Timestamp: now,
	})

	return c, nil
}

// ReconstructCase rebuilds a case from persistence.
func ReconstructCase(
	id uint,
	name string,
	private bool,
	background, location, classification string,
	status vo.Status,
	statusHistory []StatusEntry,
	authorisations []AuthorisationEntry,
	createdAt, updatedAt time.Time,
) (*Case, error) {
	if id == 0 {
		return nil, fmt.Errorf("case ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("case name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid case status: %s", status)
	}

	return &Case{
		id:             id,
		name:           name,
		private:        private,
		background:     background,
		location:       location,
		classification: classification,
		currentStatus:  status,
		statusHistory:  statusHistory,
		authorisations: authorisations,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (c *Case) ID() uint {
	return c.id
}

func (c *Case) Name() string {
	return c.name
}

func (c *Case) IsPrivate() bool {
	return c.private
}

func (c *Case) Background() string {
	return c.background
}

func (c *Case) Location() string {
	return c.location
}

func (c *Case) Classification() string {
	return c.classification
}

func (c *Case) Status() vo.Status {
	return c.currentStatus
}

func (c *Case) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Case) UpdatedAt() time.Time {
	return c.updatedAt
}

// StatusHistory returns a copy of the status history, oldest first.
func (c *Case) StatusHistory() []StatusEntry {
	history := make([]StatusEntry, len(c.statusHistory))
	copy(history, c.statusHistory)
	return history
}

// Authorisations returns a copy of the authorisation log, oldest first.
func (c *Case) Authorisations() []AuthorisationEntry {
	log := make([]AuthorisationEntry, len(c.authorisations))
	copy(log, c.authorisations)
	return log
}

func (c *Case) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("case ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetStatus appends a status entry and mirrors it onto the current status.
// A value outside the enumeration is ignored and the current state is left
// unchanged; the return value reports whether the change was applied.
func (c *Case) SetStatus(status vo.Status, actorID uint, reason string) bool {
	if !status.IsValid() {
		return false
	}

	now := time.Now().UTC()
	c.statusHistory = append(c.statusHistory, StatusEntry{
		Status:    status,
		Reason:    reason,
		ActorID:   actorID,
		Timestamp: now,
	})
	c.currentStatus = status
	c.updatedAt = now
	return true
}

// Close records a closed status entry carrying the closure reason.
func (c *Case) Close(reason string, actorID uint) bool {
	return c.SetStatus(vo.StatusClosed, actorID, reason)
}

// Authorise appends an authorisation entry. A granted code moves the case to
// created, a refused code to rejected; a pending code records the entry with
// no status side effect. Invalid codes are ignored.
func (c *Case) Authorise(authoriserID uint, reason string, code vo.AuthorisationCode) bool {
	if !code.IsValid() {
		return false
	}

	now := time.Now().UTC()
	c.authorisations = append(c.authorisations, AuthorisationEntry{
		Code:         code,
		Reason:       reason,
		AuthoriserID: authoriserID,
		Timestamp:    now,
	})
	c.updatedAt = now

	switch {
	case code.IsGranted():
		c.SetStatus(vo.StatusCreated, authoriserID, reason)
	case code.IsRefused():
		c.SetStatus(vo.StatusRejected, authoriserID, reason)
	}
	return true
}

// IsAuthorised reports whether the most recent authorisation entry granted
// the case. A case with no entries is not authorised.
func (c *Case) IsAuthorised() bool {
	if len(c.authorisations) == 0 {
		return false
	}
	return c.authorisations[len(c.authorisations)-1].Code.IsGranted()
}

// LatestAuthorisation returns the most recent authorisation entry, or nil.
func (c *Case) LatestAuthorisation() *AuthorisationEntry {
	if len(c.authorisations) == 0 {
		return nil
	}
	entry := c.authorisations[len(c.authorisations)-1]
	return &entry
}

// UpdateDetails edits the describable fields. Status gating is the
// permission layer's responsibility, not the aggregate's.
func (c *Case) UpdateDetails(name, background, location, classification string) error {
	if len(name) == 0 {
		return fmt.Errorf("case name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("case name exceeds maximum length of 200 characters")
	}

	c.name = name
	c.background = background
	c.location = location
	c.classification = classification
	c.updatedAt = time.Now().UTC()
	return nil
}

// SetPrivate toggles private visibility.
func (c *Case) SetPrivate(private bool) {
	c.private = private
	c.updatedAt = time.Now().UTC()
}
