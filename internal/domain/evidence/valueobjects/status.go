package valueobjects

// Status represents the custody status of a piece of evidence.
type Status string

const (
	StatusInactive  Status = "inactive"
	StatusActive    Status = "active"
	StatusArchived  Status = "archived"
	StatusDestroyed Status = "destroyed"
)

var validStatuses = map[Status]bool{
	StatusInactive:  true,
	StatusActive:    true,
	StatusArchived:  true,
	StatusDestroyed: true,
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the status is a member of the closed enumeration.
func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsArchived checks if the evidence is archived and on the retention clock.
func (s Status) IsArchived() bool {
	return s == StatusArchived
}

// IsDestroyed checks if the evidence has been destroyed.
func (s Status) IsDestroyed() bool {
	return s == StatusDestroyed
}

// AllStatuses returns every member of the enumeration.
func AllStatuses() []Status {
	return []Status{StatusInactive, StatusActive, StatusArchived, StatusDestroyed}
}
