package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/caselog-dev/caselog/pkg/domain/types"
)

// DateLayout is the calendar date format of the Date column.
const DateLayout = "2006-01-02"

// Fields carries the caller-supplied values for a new case: every
// Record field except Number, which the collection assigns.
type Fields struct {
	PatientID      string `masq:"secret"`
	Age            int
	Date           string
	Hospital       string
	Consultant     string
	Diagnosis      string
	Procedure      string
	Anaesthesia    types.Anaesthesia
	Outcome        types.Outcome
	Notes          string
	MyRole         types.Role
	PrimarySurgeon string
	Assistant      string
}

// Validate checks the fields against the data model: patient ID
// present, age within [0, 120], date parseable as YYYY-MM-DD, and all
// enumerated values within their domains.
func (f *Fields) Validate() error {
	if f.PatientID == "" {
		return goerr.Wrap(ErrInvalidRecord, "patient ID is required")
	}
	if f.Age < 0 || f.Age > 120 {
		return goerr.Wrap(ErrInvalidRecord, "age must be between 0 and 120", goerr.V(FieldKey, types.FieldAge), goerr.V("age", f.Age))
	}
	if _, err := time.Parse(DateLayout, f.Date); err != nil {
		return goerr.Wrap(ErrInvalidRecord, "date must be YYYY-MM-DD", goerr.V(FieldKey, types.FieldDate), goerr.V("date", f.Date))
	}
	if !f.Anaesthesia.IsValid() {
		return goerr.Wrap(ErrInvalidRecord, "invalid anaesthesia", goerr.V(FieldKey, types.FieldAnaesthesia), goerr.V("value", string(f.Anaesthesia)))
	}
	if !f.Outcome.IsValid() {
		return goerr.Wrap(ErrInvalidRecord, "invalid outcome", goerr.V(FieldKey, types.FieldOutcome), goerr.V("value", string(f.Outcome)))
	}
	if !f.MyRole.IsValid() {
		return goerr.Wrap(ErrInvalidRecord, "invalid role", goerr.V(FieldKey, types.FieldMyRole), goerr.V("value", string(f.MyRole)))
	}
	return nil
}
