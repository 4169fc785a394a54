package enums

import "fmt"

// GroupStatus tracks a buying group through its lifecycle.
type GroupStatus string

const (
	GroupStatusForming     GroupStatus = "forming"
	GroupStatusLocked      GroupStatus = "locked"
	GroupStatusNegotiation GroupStatus = "negotiation"
	GroupStatusCompleted   GroupStatus = "completed"
)

var validGroupStatuses = []GroupStatus{
	GroupStatusForming,
	GroupStatusLocked,
	GroupStatusNegotiation,
	GroupStatusCompleted,
}

// String implements fmt.Stringer.
func (g GroupStatus) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GroupStatus.
func (g GroupStatus) IsValid() bool {
	for _, candidate := range validGroupStatuses {
		if candidate == g {
			return true
		}
	}
	return false
}

// AcceptsOffers reports whether dealers may still submit offers.
func (g GroupStatus) AcceptsOffers() bool {
	return g == GroupStatusLocked || g == GroupStatusNegotiation
}

// ParseGroupStatus converts raw input into a GroupStatus.
func ParseGroupStatus(value string) (GroupStatus, error) {
	for _, candidate := range validGroupStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid group status %q", value)
}
