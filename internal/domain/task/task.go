// Package task contains the task aggregate and its QA workflow. A task
// belongs to exactly one case and carries the same append-only status
// history pattern as the case itself, plus two sign-off flags tracking a
// partially completed QA round when two reviewers are configured.
package task

import (
	"fmt"
	"time"

	vo "custodian/internal/domain/task/valueobjects"
)

// StatusEntry is one row of the append-only status history. Progress notes
// are attached by re-appending the current status with the note text.
type StatusEntry struct {
	Status    vo.Status
	Note      string
	ActorID   uint
	Timestamp time.Time
}

type Task struct {
	id            uint
	caseID        uint
	name          string
	background    string
	location      string
	currentStatus vo.Status
	statusHistory []StatusEntry

	// QA slot mirrors, kept in sync with the assignment records by the
	// application layer. The workflow methods need them to authorise
	// pass/fail calls.
	principalQAID *uint
	secondaryQAID *uint

	princQAPassed bool
	seconQAPassed bool

	createdAt time.Time
	updatedAt time.Time
}

// NewTask creates a task in the created status with a seeded history entry.
func NewTask(caseID uint, name, background, location string, creatorID uint) (*Task, error) {
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("task name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("task name exceeds maximum length of 200 characters")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()
	t := &Task{
		caseID:        caseID,
		name:          name,
		background:    background,
		location:      location,
		currentStatus: vo.StatusCreated,
		createdAt:     now,
		updatedAt:     now,
	}
	t.statusHistory = append(t.statusHistory, StatusEntry{
		Status:    vo.StatusCreated,
		ActorID:   creatorID,
		Timestamp: now,
	})

	return t, nil
}

// ReconstructTask rebuilds a task from persistence.
func ReconstructTask(
	id uint,
	caseID uint,
	name, background, location string,
	status vo.Status,
	statusHistory []StatusEntry,
	principalQAID, secondaryQAID *uint,
	princQAPassed, seconQAPassed bool,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	return &Task{
		id:            id,
		caseID:        caseID,
		name:          name,
		background:    background,
		location:      location,
		currentStatus: status,
		statusHistory: statusHistory,
		principalQAID: principalQAID,
		secondaryQAID: secondaryQAID,
		princQAPassed: princQAPassed,
		seconQAPassed: seconQAPassed,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (t *Task) ID() uint {
	return t.id
}

func (t *Task) CaseID() uint {
	return t.caseID
}

func (t *Task) Name() string {
	return t.name
}

func (t *Task) Background() string {
	return t.background
}

func (t *Task) Location() string {
	return t.location
}

func (t *Task) Status() vo.Status {
	return t.currentStatus
}

func (t *Task) PrincipalQAID() *uint {
	return t.principalQAID
}

func (t *Task) SecondaryQAID() *uint {
	return t.secondaryQAID
}

func (t *Task) PrincQAPassed() bool {
	return t.princQAPassed
}

func (t *Task) SeconQAPassed() bool {
	return t.seconQAPassed
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}

// StatusHistory returns a copy of the status history, oldest first.
func (t *Task) StatusHistory() []StatusEntry {
	history := make([]StatusEntry, len(t.statusHistory))
	copy(history, t.statusHistory)
	return history
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetStatus appends a status entry and mirrors it onto the current status.
// Values outside the enumeration are ignored; the return value reports
// whether the change was applied.
func (t *Task) SetStatus(status vo.Status, actorID uint, note string) bool {
	if !status.IsValid() {
		return false
	}

	now := time.Now().UTC()
	t.statusHistory = append(t.statusHistory, StatusEntry{
		Status:    status,
		Note:      note,
		ActorID:   actorID,
		Timestamp: now,
	})
	t.currentStatus = status
	t.updatedAt = now
	return true
}

// AddNote re-appends the current status carrying the note text, leaving the
// status value itself unchanged.
func (t *Task) AddNote(note string, actorID uint) {
	t.SetStatus(t.currentStatus, actorID, note)
}

// UpdateDetails edits the describable fields.
func (t *Task) UpdateDetails(name, background, location string) error {
	if len(name) == 0 {
		return fmt.Errorf("task name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("task name exceeds maximum length of 200 characters")
	}

	t.name = name
	t.background = background
	t.location = location
	t.updatedAt = time.Now().UTC()
	return nil
}

// RequestQA moves the task into QA review and opens a fresh sign-off round.
func (t *Task) RequestQA(actorID uint, note string) {
	t.princQAPassed = false
	t.seconQAPassed = false
	t.SetStatus(vo.StatusQA, actorID, note)
}

// isQAReviewer reports whether the author holds one of the QA slots.
func (t *Task) isQAReviewer(authorID uint) bool {
	if t.principalQAID != nil && *t.principalQAID == authorID {
		return true
	}
	if t.secondaryQAID != nil && *t.secondaryQAID == authorID {
		return true
	}
	return false
}

// PassQA records a passing review from one of the task's QA reviewers.
// Callers outside the two QA slots are ignored, as are calls outside an
// open QA round. With a single reviewer configured a pass completes the
// round and moves the task to delivery; with two reviewers both must pass
// before the transition fires. The sign-off flags reset once the round
// completes so a later round starts clean.
func (t *Task) PassQA(note string, authorID uint) bool {
	if !t.currentStatus.IsQA() {
		return false
	}
	if !t.isQAReviewer(authorID) {
		return false
	}

	if t.principalQAID != nil && *t.principalQAID == authorID {
		t.princQAPassed = true
	}
	if t.secondaryQAID != nil && *t.secondaryQAID == authorID {
		t.seconQAPassed = true
	}

	principalDone := t.principalQAID == nil || t.princQAPassed
	secondaryDone := t.secondaryQAID == nil || t.seconQAPassed

	if principalDone && secondaryDone {
		t.princQAPassed = false
		t.seconQAPassed = false
		t.SetStatus(vo.StatusDelivery, authorID, note)
		return true
	}

	// Partial pass in a two-reviewer round: the note records progress,
	// the status stays put.
	t.AddNote(note, authorID)
	return true
}

// FailQA records a failing review. A single rejection sends the work back
// to progress immediately, even when two reviewers are configured and the
// other has already passed. Both flags reset.
func (t *Task) FailQA(note string, authorID uint) bool {
	if !t.currentStatus.IsQA() {
		return false
	}
	if !t.isQAReviewer(authorID) {
		return false
	}

	t.princQAPassed = false
	t.seconQAPassed = false
	t.SetStatus(vo.StatusProgress, authorID, note)
	return true
}

// AssignQA updates the QA slot mirrors and re-appends the current status
// row to attach an explanatory note. The assignment records themselves are
// replaced by the assignment module; this keeps the workflow's view of the
// slots consistent.
func (t *Task) AssignQA(principalID, secondaryID *uint, assignerID uint, note string) {
	t.principalQAID = principalID
	t.secondaryQAID = secondaryID
	t.AddNote(note, assignerID)
}
