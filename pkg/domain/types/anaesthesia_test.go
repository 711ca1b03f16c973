package types_test

import (
	"testing"

	"github.com/caselog-dev/caselog/pkg/domain/types"
)

func TestAnaesthesiaIsValid(t *testing.T) {
	for _, a := range types.AllAnaesthesias() {
		if !a.IsValid() {
			t.Errorf("IsValid() = false for %q", a)
		}
	}

	invalid := []types.Anaesthesia{"", "general", "GA", "Block"}
	for _, a := range invalid {
		if a.IsValid() {
			t.Errorf("IsValid() = true for %q", a)
		}
	}
}

func TestParseAnaesthesia(t *testing.T) {
	a, err := types.ParseAnaesthesia("Spinal")
	if err != nil {
		t.Fatalf("ParseAnaesthesia(Spinal) error: %v", err)
	}
	if a != types.AnaesthesiaSpinal {
		t.Errorf("ParseAnaesthesia(Spinal) = %q", a)
	}

	if _, err := types.ParseAnaesthesia("spinal"); err == nil {
		t.Error("ParseAnaesthesia(spinal) should fail, enum values are case-sensitive")
	}
}
