package valueobjects

// CustodyDirection distinguishes the two chain-of-custody event kinds.
type CustodyDirection string

const (
	CustodyCheckIn  CustodyDirection = "check_in"
	CustodyCheckOut CustodyDirection = "check_out"
)

// String returns the string representation.
func (d CustodyDirection) String() string {
	return string(d)
}

// IsValid checks if the direction is valid.
func (d CustodyDirection) IsValid() bool {
	return d == CustodyCheckIn || d == CustodyCheckOut
}
