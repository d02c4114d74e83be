package cart

import "fmt"

// Status tracks whether a cart is still open or already checked out.
type Status string

const (
	StatusActive    Status = "active"
	StatusConverted Status = "converted"
)

var validStatuses = []Status{
	StatusActive,
	StatusConverted,
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Status.
func (s Status) IsValid() bool {
	for _, candidate := range validStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStatus converts raw input into a Status.
func ParseStatus(value string) (Status, error) {
	for _, candidate := range validStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart status %q", value)
}
