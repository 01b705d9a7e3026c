package valueobjects

// Status represents the workflow status of a task.
type Status string

const (
	StatusCreated   Status = "created"
	StatusQueued    Status = "queued"
	StatusAllocated Status = "allocated"
	StatusProgress  Status = "progress"
	StatusQA        Status = "qa"
	StatusDelivery  Status = "delivery"
	StatusComplete  Status = "complete"
	StatusClosed    Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusCreated:   true,
	StatusQueued:    true,
	StatusAllocated: true,
	StatusProgress:  true,
	StatusQA:        true,
	StatusDelivery:  true,
	StatusComplete:  true,
	StatusClosed:    true,
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the status is a member of the closed enumeration.
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsQA checks if the task is under QA review.
func (s Status) IsQA() bool {
	return s == StatusQA
}

// IsComplete checks if the task work is finished.
func (s Status) IsComplete() bool {
	return s == StatusComplete || s == StatusClosed
}

// IsNotStarted reports whether work on the task has yet to begin. Only
// not-started tasks accept investigator self-assignment.
func (s Status) IsNotStarted() bool {
	return s == StatusCreated || s == StatusQueued
}

// AllowsNotes reports whether free-form progress notes may be attached.
func (s Status) AllowsNotes() bool {
	switch s {
	case StatusAllocated, StatusProgress, StatusQA, StatusDelivery, StatusComplete:
		return true
	}
	return false
}

// AllStatuses returns every member of the enumeration.
func AllStatuses() []Status {
	return []Status{
		StatusCreated, StatusQueued, StatusAllocated, StatusProgress,
		StatusQA, StatusDelivery, StatusComplete, StatusClosed,
	}
}

// WorkableStatuses returns the statuses in which the task is still in flight.
func WorkableStatuses() []Status {
	return []Status{StatusCreated, StatusQueued, StatusAllocated, StatusProgress, StatusQA, StatusDelivery}
}
