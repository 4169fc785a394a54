package enums

import "fmt"

// Transmission is the gearbox type a catalog price is quoted for.
type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionAMT       Transmission = "AMT"
	TransmissionDCA       Transmission = "DCA"
)

var validTransmissions = []Transmission{
	TransmissionManual,
	TransmissionAutomatic,
	TransmissionAMT,
	TransmissionDCA,
}

// String implements fmt.Stringer.
func (t Transmission) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Transmission.
func (t Transmission) IsValid() bool {
	for _, candidate := range validTransmissions {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransmission converts raw input into a Transmission. Matching is
// case-sensitive, like every other catalog key.
func ParseTransmission(value string) (Transmission, error) {
	for _, candidate := range validTransmissions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transmission %q", value)
}
