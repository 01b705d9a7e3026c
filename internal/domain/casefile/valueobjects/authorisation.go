package valueobjects

// AuthorisationCode represents the outcome recorded in a case authorisation
// log entry.
type AuthorisationCode string

const (
	AuthorisationPending AuthorisationCode = "PENDING"
	AuthorisationGranted AuthorisationCode = "AUTH"
	AuthorisationRefused AuthorisationCode = "NOAUTH"
)

var validAuthorisationCodes = map[AuthorisationCode]bool{
	AuthorisationPending: true,
	AuthorisationGranted: true,
	AuthorisationRefused: true,
}

// String returns the string representation.
func (c AuthorisationCode) String() string {
	return string(c)
}

// IsValid checks if the code is valid.
func (c AuthorisationCode) IsValid() bool {
	return validAuthorisationCodes[c]
}

// IsGranted checks if the code authorises the case.
func (c AuthorisationCode) IsGranted() bool {
	return c == AuthorisationGranted
}

// IsRefused checks if the code rejects the case.
func (c AuthorisationCode) IsRefused() bool {
	return c == AuthorisationRefused
}
