package valueobjects

// Status represents the lifecycle status of a case.
type Status string

const (
	StatusCreated  Status = "created"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
	StatusOpen     Status = "open"
	StatusClosed   Status = "closed"
	StatusArchived Status = "archived"
)

var validStatuses = map[Status]bool{
	StatusCreated:  true,
	StatusPending:  true,
	StatusRejected: true,
	StatusOpen:     true,
	StatusClosed:   true,
	StatusArchived: true,
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the status is a member of the closed enumeration.
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsPending checks if the case is awaiting authorisation.
func (s Status) IsPending() bool {
	return s == StatusPending
}

// IsRejected checks if the case authorisation was refused.
func (s Status) IsRejected() bool {
	return s == StatusRejected
}

// IsOpen checks if the case is open for work.
func (s Status) IsOpen() bool {
	return s == StatusOpen
}

// IsClosed checks if the case has been closed or archived.
func (s Status) IsClosed() bool {
	return s == StatusClosed || s == StatusArchived
}

// IsArchived checks if the case is archived.
func (s Status) IsArchived() bool {
	return s == StatusArchived
}

// IsApproved reports whether the case has passed authorisation. Pending and
// rejected cases have restricted visibility.
func (s Status) IsApproved() bool {
	return s != StatusPending && s != StatusRejected
}

// AllStatuses returns every member of the enumeration.
func AllStatuses() []Status {
	return []Status{StatusCreated, StatusPending, StatusRejected, StatusOpen, StatusClosed, StatusArchived}
}

// WorkableStatuses returns the statuses in which case children may be worked.
func WorkableStatuses() []Status {
	return []Status{StatusCreated, StatusOpen}
}

// ClosedStatuses returns the terminal statuses.
func ClosedStatuses() []Status {
	return []Status{StatusClosed, StatusArchived}
}
