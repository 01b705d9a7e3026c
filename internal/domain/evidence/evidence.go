// Package evidence contains the evidence aggregate: a physical or digital
// exhibit, optionally attached to a case, with an append-only status history
// and a separate chain-of-custody log. Archiving starts a retention clock
// that drives the destruction reminder worker.
package evidence

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "custodian/internal/domain/evidence/valueobjects"
)

// StatusEntry is one row of the append-only status history.
type StatusEntry struct {
	Status    vo.Status
	Reason    string
	ActorID   uint
	Timestamp time.Time
}

// CustodyEntry is one row of the append-only chain-of-custody log.
type CustodyEntry struct {
	Direction vo.CustodyDirection
	Custodian string
	ActorID   uint
	Comment   string
	ReceiptID string
	Timestamp time.Time
}

type Evidence struct {
	id                 uint
	caseID             *uint
	reference          string
	evidenceType       string
	description        string
	originator         string
	currentStatus      vo.Status
	statusHistory      []StatusEntry
	custodyLog         []CustodyEntry
	retentionStart     *time.Time
	retentionDate      *time.Time
	retentionSent      bool
	createdAt          time.Time
	updatedAt          time.Time
}

// NewEvidence creates evidence in the inactive status. caseID may be nil:
// evidence can exist before it is associated with a case.
func NewEvidence(caseID *uint, evidenceType, description, originator string, creatorID uint) (*Evidence, error) {
	if len(evidenceType) == 0 {
		return nil, fmt.Errorf("evidence type is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()
	e := &Evidence{
		caseID:        caseID,
		reference:     uuid.NewString(),
		evidenceType:  evidenceType,
		description:   description,
		originator:    originator,
		currentStatus: vo.StatusInactive,
		createdAt:     now,
		updatedAt:     now,
	}
	e.statusHistory = append(e.statusHistory, StatusEntry{
		Status:    vo.StatusInactive,
		ActorID:   creatorID,
		Timestamp: now,
	})

	return e, nil
}

// ReconstructEvidence rebuilds evidence from persistence.
func ReconstructEvidence(
	id uint,
	caseID *uint,
	reference, evidenceType, description, originator string,
	status vo.Status,
	statusHistory []StatusEntry,
	custodyLog []CustodyEntry,
	retentionStart, retentionDate *time.Time,
	retentionSent bool,
	createdAt, updatedAt time.Time,
) (*Evidence, error) {
	if id == 0 {
		return nil, fmt.Errorf("evidence ID cannot be zero")
	}
	if len(reference) == 0 {
		return nil, fmt.Errorf("evidence reference is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid evidence status: %s", status)
	}

	return &Evidence{
		id:             id,
		caseID:         caseID,
		reference:      reference,
		evidenceType:   evidenceType,
		description:    description,
		originator:     originator,
		currentStatus:  status,
		statusHistory:  statusHistory,
		custodyLog:     custodyLog,
		retentionStart: retentionStart,
		retentionDate:  retentionDate,
		retentionSent:  retentionSent,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (e *Evidence) ID() uint {
	return e.id
}

func (e *Evidence) CaseID() *uint {
	return e.caseID
}

func (e *Evidence) Reference() string {
	return e.reference
}

func (e *Evidence) Type() string {
	return e.evidenceType
}

func (e *Evidence) Description() string {
	return e.description
}

func (e *Evidence) Originator() string {
	return e.originator
}

func (e *Evidence) Status() vo.Status {
	return e.currentStatus
}

func (e *Evidence) RetentionStart() *time.Time {
	return e.retentionStart
}

func (e *Evidence) RetentionDate() *time.Time {
	return e.retentionDate
}

func (e *Evidence) RetentionReminderSent() bool {
	return e.retentionSent
}

func (e *Evidence) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Evidence) UpdatedAt() time.Time {
	return e.updatedAt
}

// StatusHistory returns a copy of the status history, oldest first.
func (e *Evidence) StatusHistory() []StatusEntry {
	history := make([]StatusEntry, len(e.statusHistory))
	copy(history, e.statusHistory)
	return history
}

// CustodyLog returns a copy of the chain-of-custody log, oldest first.
func (e *Evidence) CustodyLog() []CustodyEntry {
	log := make([]CustodyEntry, len(e.custodyLog))
	copy(log, e.custodyLog)
	return log
}

func (e *Evidence) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("evidence ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("evidence ID cannot be zero")
	}
	e.id = id
	return nil
}

// AssociateCase attaches the evidence to a case.
func (e *Evidence) AssociateCase(caseID uint) error {
	if caseID == 0 {
		return fmt.Errorf("case ID cannot be zero")
	}
	e.caseID = &caseID
	e.updatedAt = time.Now().UTC()
	return nil
}

// SetStatus appends a status entry and mirrors it onto the current status.
// Values outside the enumeration are ignored. Entering archived starts the
// retention clock for the given period; leaving archived clears the clock
// and the reminder-sent flag.
func (e *Evidence) SetStatus(status vo.Status, actorID uint, reason string, retentionMonths int) bool {
	if !status.IsValid() {
		return false
	}

	wasArchived := e.currentStatus.IsArchived()

	now := time.Now().UTC()
	e.statusHistory = append(e.statusHistory, StatusEntry{
		Status:    status,
		Reason:    reason,
		ActorID:   actorID,
		Timestamp: now,
	})
	e.currentStatus = status
	e.updatedAt = now

	if status.IsArchived() && !wasArchived {
		due := now.AddDate(0, retentionMonths, 0)
		e.retentionStart = &now
		e.retentionDate = &due
		e.retentionSent = false
	} else if !status.IsArchived() && wasArchived {
		e.retentionStart = nil
		e.retentionDate = nil
		e.retentionSent = false
	}

	return true
}

// ReminderDue reports whether a destruction reminder should be sent: the
// retention clock is set, has elapsed, and no reminder has gone out yet.
func (e *Evidence) ReminderDue(now time.Time) bool {
	if e.retentionDate == nil {
		return false
	}
	if e.retentionSent {
		return false
	}
	return !now.Before(*e.retentionDate)
}

// MarkReminderSent records that the destruction reminder has been sent.
func (e *Evidence) MarkReminderSent() {
	e.retentionSent = true
	e.updatedAt = time.Now().UTC()
}

// CheckIn appends a check-in event to the chain of custody. The receipt ID
// references an uploaded receipt attachment and may be empty.
func (e *Evidence) CheckIn(custodian string, actorID uint, comment, receiptID string) error {
	return e.appendCustody(vo.CustodyCheckIn, custodian, actorID, comment, receiptID)
}

// CheckOut appends a check-out event to the chain of custody.
func (e *Evidence) CheckOut(custodian string, actorID uint, comment, receiptID string) error {
	return e.appendCustody(vo.CustodyCheckOut, custodian, actorID, comment, receiptID)
}

func (e *Evidence) appendCustody(direction vo.CustodyDirection, custodian string, actorID uint, comment, receiptID string) error {
	if len(custodian) == 0 {
		return fmt.Errorf("custodian is required")
	}
	if actorID == 0 {
		return fmt.Errorf("actor ID is required")
	}

	now := time.Now().UTC()
	e.custodyLog = append(e.custodyLog, CustodyEntry{
		Direction: direction,
		Custodian: custodian,
		ActorID:   actorID,
		Comment:   comment,
		ReceiptID: receiptID,
		Timestamp: now,
	})
	e.updatedAt = now
	return nil
}

// CurrentCustodian returns the custodian named on the most recent custody
// event, or empty if the chain is empty.
func (e *Evidence) CurrentCustodian() string {
	if len(e.custodyLog) == 0 {
		return ""
	}
	return e.custodyLog[len(e.custodyLog)-1].Custodian
}

// UpdateDetails edits the describable fields.
func (e *Evidence) UpdateDetails(evidenceType, description, originator string) error {
	if len(evidenceType) == 0 {
		return fmt.Errorf("evidence type is required")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}

	e.evidenceType = evidenceType
	e.description = description
	e.originator = originator
	e.updatedAt = time.Now().UTC()
	return nil
}

// ForceRetentionDate overrides the retention due date. Used by tests and by
// administrative corrections of the clock.
func (e *Evidence) ForceRetentionDate(due time.Time) {
	e.retentionDate = &due
}
