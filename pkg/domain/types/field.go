package types

import "fmt"

// Field identifies a column of the case log. The string value is the
// durable column name, so the CSV header and the export header derive
// from the same list.
type Field string

const (
	FieldNumber         Field = "Number"
	FieldPatientID      Field = "Patient_ID"
	FieldAge            Field = "Age"
	FieldDate           Field = "Date"
	FieldHospital       Field = "Hospital"
	FieldConsultant     Field = "Consultant"
	FieldDiagnosis      Field = "Diagnosis"
	FieldProcedure      Field = "Procedure"
	FieldAnaesthesia    Field = "Anaesthesia"
	FieldOutcome        Field = "Outcome"
	FieldNotes          Field = "Notes"
	FieldMyRole         Field = "My_Role"
	FieldPrimarySurgeon Field = "Primary_Surgeon"
	FieldAssistant      Field = "Assistant"
)

// Columns returns all fields in the durable column order. Existing log
// files depend on this exact order and these exact names.
func Columns() []Field {
	return []Field{
		FieldNumber,
		FieldPatientID,
		FieldAge,
		FieldDate,
		FieldHospital,
		FieldConsultant,
		FieldDiagnosis,
		FieldProcedure,
		FieldAnaesthesia,
		FieldOutcome,
		FieldNotes,
		FieldMyRole,
		FieldPrimarySurgeon,
		FieldAssistant,
	}
}

// FilterableFields returns the free-text fields that accept substring
// filter patterns.
func FilterableFields() []Field {
	return []Field{
		FieldProcedure,
		FieldDiagnosis,
		FieldHospital,
		FieldConsultant,
	}
}

// IsValid checks if the field is a known column
func (f Field) IsValid() bool {
	for _, c := range Columns() {
		if f == c {
			return true
		}
	}
	return false
}

// String returns the durable column name
func (f Field) String() string {
	return string(f)
}

// ParseField parses a string into a Field
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.IsValid() {
		return "", fmt.Errorf("unknown field: %s", s)
	}
	return f, nil
}
