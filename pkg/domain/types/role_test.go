package types_test

import (
	"testing"

	"github.com/caselog-dev/caselog/pkg/domain/types"
)

func TestRoleIsValid(t *testing.T) {
	for _, r := range types.AllRoles() {
		if !r.IsValid() {
			t.Errorf("IsValid() = false for %q", r)
		}
	}

	invalid := []types.Role{"", "Surgeon", "primary surgeon"}
	for _, r := range invalid {
		if r.IsValid() {
			t.Errorf("IsValid() = true for %q", r)
		}
	}
}

func TestParseRole(t *testing.T) {
	r, err := types.ParseRole("Primary Surgeon")
	if err != nil {
		t.Fatalf("ParseRole(Primary Surgeon) error: %v", err)
	}
	if r != types.RolePrimarySurgeon {
		t.Errorf("ParseRole(Primary Surgeon) = %q", r)
	}

	if _, err := types.ParseRole("Spectator"); err == nil {
		t.Error("ParseRole(Spectator) should fail")
	}
}

func TestOutcomeIsValid(t *testing.T) {
	for _, o := range types.AllOutcomes() {
		if !o.IsValid() {
			t.Errorf("IsValid() = false for %q", o)
		}
	}
	if types.Outcome("Died").IsValid() {
		t.Error("IsValid() = true for unknown outcome")
	}
}
