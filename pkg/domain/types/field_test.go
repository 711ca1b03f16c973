package types_test

import (
	"testing"

	"github.com/caselog-dev/caselog/pkg/domain/types"
)

func TestColumnsOrder(t *testing.T) {
	// The durable file format depends on this exact order and these
	// exact names; existing logs break if it changes.
	want := []string{
		"Number", "Patient_ID", "Age", "Date", "Hospital", "Consultant",
		"Diagnosis", "Procedure", "Anaesthesia", "Outcome", "Notes",
		"My_Role", "Primary_Surgeon", "Assistant",
	}

	cols := types.Columns()
	if len(cols) != len(want) {
		t.Fatalf("Columns() has %d entries, want %d", len(cols), len(want))
	}
	for i, w := range want {
		if cols[i].String() != w {
			t.Errorf("Columns()[%d] = %q, want %q", i, cols[i], w)
		}
	}
}

func TestParseField(t *testing.T) {
	f, err := types.ParseField("My_Role")
	if err != nil {
		t.Fatalf("ParseField(My_Role) error: %v", err)
	}
	if f != types.FieldMyRole {
		t.Errorf("ParseField(My_Role) = %q", f)
	}

	if _, err := types.ParseField("my_role"); err == nil {
		t.Error("ParseField(my_role) should fail, column names are exact")
	}
}

func TestFilterableFieldsAreValid(t *testing.T) {
	for _, f := range types.FilterableFields() {
		if !f.IsValid() {
			t.Errorf("filterable field %q is not a column", f)
		}
	}
}
