package model

import (
	"strconv"

	"github.com/caselog-dev/caselog/pkg/domain/types"
)

// Record is one logged surgical case. Number is assigned at append
// time and immutable afterwards. Date is ISO-8601 text (YYYY-MM-DD),
// matching the durable format.
type Record struct {
	Number         int
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

// Value returns the string form of the given column, as it appears in
// the durable file. Unknown fields yield an empty string.
func (r Record) Value(f types.Field) string {
	switch f {
	case types.FieldNumber:
		return strconv.Itoa(r.Number)
	case types.FieldPatientID:
		return r.PatientID
	case types.FieldAge:
		return strconv.Itoa(r.Age)
	case types.FieldDate:
		return r.Date
	case types.FieldHospital:
		return r.Hospital
	case types.FieldConsultant:
		return r.Consultant
	case types.FieldDiagnosis:
		return r.Diagnosis
	case types.FieldProcedure:
		return r.Procedure
	case types.FieldAnaesthesia:
		return r.Anaesthesia.String()
	case types.FieldOutcome:
		return r.Outcome.String()
	case types.FieldNotes:
		return r.Notes
	case types.FieldMyRole:
		return r.MyRole.String()
	case types.FieldPrimarySurgeon:
		return r.PrimarySurgeon
	case types.FieldAssistant:
		return r.Assistant
	default:
		return ""
	}
}
