package types

import "fmt"

// Outcome represents the outcome of a case
type Outcome string

const (
	OutcomeUneventful  Outcome = "Uneventful"
	OutcomeComplicated Outcome = "Complicated"
)

// AllOutcomes returns all valid outcomes
func AllOutcomes() []Outcome {
	return []Outcome{
		OutcomeUneventful,
		OutcomeComplicated,
	}
}

// IsValid checks if the outcome is valid
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeUneventful,
		OutcomeComplicated:
		return true
	default:
		return false
	}
}

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// ParseOutcome parses a string into an Outcome
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(s)
	if !o.IsValid() {
		return "", fmt.Errorf("invalid outcome: %s", s)
	}
	return o, nil
}
