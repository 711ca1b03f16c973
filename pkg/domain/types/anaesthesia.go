package types

import "fmt"

// Anaesthesia represents the anaesthesia technique used for a case
type Anaesthesia string

const (
	AnaesthesiaGeneral  Anaesthesia = "General"
	AnaesthesiaSpinal   Anaesthesia = "Spinal"
	AnaesthesiaEpidural Anaesthesia = "Epidural"
	AnaesthesiaRegional Anaesthesia = "Regional"
	AnaesthesiaLocal    Anaesthesia = "Local"
	AnaesthesiaSedation Anaesthesia = "Sedation"
)

// AllAnaesthesias returns all valid anaesthesia techniques
func AllAnaesthesias() []Anaesthesia {
	return []Anaesthesia{
		AnaesthesiaGeneral,
		AnaesthesiaSpinal,
		AnaesthesiaEpidural,
		AnaesthesiaRegional,
		AnaesthesiaLocal,
		AnaesthesiaSedation,
	}
}

// IsValid checks if the anaesthesia technique is valid
func (a Anaesthesia) IsValid() bool {
	switch a {
	case AnaesthesiaGeneral,
		AnaesthesiaSpinal,
		AnaesthesiaEpidural,
		AnaesthesiaRegional,
		AnaesthesiaLocal,
		AnaesthesiaSedation:
		return true
	default:
		return false
	}
}

// String returns the string representation of the anaesthesia technique
func (a Anaesthesia) String() string {
	return string(a)
}

// ParseAnaesthesia parses a string into an Anaesthesia
func ParseAnaesthesia(s string) (Anaesthesia, error) {
	a := Anaesthesia(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid anaesthesia: %s", s)
	}
	return a, nil
}
