package export_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/xuri/excelize/v2"

	"github.com/caselog-dev/caselog/pkg/domain/model"
	"github.com/caselog-dev/caselog/pkg/domain/types"
	"github.com/caselog-dev/caselog/pkg/service/export"
)

func TestEncodeRoundTrip(t *testing.T) {
	col := model.NewCollection(
		model.Record{
			Number:         1,
			PatientID:      "2025-001",
			Age:            34,
			Date:           "2025-01-10",
			Hospital:       "General",
			Consultant:     "Dr. X",
			Diagnosis:      "Appendicitis",
			Procedure:      "Appendectomy",
			Anaesthesia:    types.AnaesthesiaGeneral,
			Outcome:        types.OutcomeUneventful,
			Notes:          "smooth",
			MyRole:         types.RolePrimarySurgeon,
			PrimarySurgeon: "Dr. X",
			Assistant:      "Dr. Y",
		},
		model.Record{
			Number:      2,
			PatientID:   "2025-002",
			Age:         71,
			Date:        "2025-01-12",
			Hospital:    "City",
			Consultant:  "Dr. Z",
			Diagnosis:   "Cholelithiasis",
			Procedure:   "Cholecystectomy",
			Anaesthesia: types.AnaesthesiaSpinal,
			Outcome:     types.OutcomeComplicated,
			MyRole:      types.RoleAssistant,
		},
	)

	data, err := export.Encode(col)
	gt.NoError(t, err).Required()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	gt.NoError(t, err).Required()
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows(export.SheetName)
	gt.NoError(t, err).Required()
	gt.Number(t, len(rows)).Equal(3)

	wantHeader := []string{
		"Number", "Patient_ID", "Age", "Date", "Hospital", "Consultant",
		"Diagnosis", "Procedure", "Anaesthesia", "Outcome", "Notes",
		"My_Role", "Primary_Surgeon", "Assistant",
	}
	gt.Value(t, rows[0]).Equal(wantHeader)

	gt.Value(t, rows[1]).Equal([]string{
		"1", "2025-001", "34", "2025-01-10", "General", "Dr. X",
		"Appendicitis", "Appendectomy", "General", "Uneventful", "smooth",
		"Primary Surgeon", "Dr. X", "Dr. Y",
	})
	gt.Value(t, rows[2][0]).Equal("2")
	gt.Value(t, rows[2][7]).Equal("Cholecystectomy")
	gt.Value(t, rows[2][9]).Equal("Complicated")
}

func TestEncodeEmptyCollection(t *testing.T) {
	data, err := export.Encode(model.NewCollection())
	gt.NoError(t, err).Required()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	gt.NoError(t, err).Required()
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows(export.SheetName)
	gt.NoError(t, err).Required()
	// Header only; the schema stays defined even with no cases.
	gt.Number(t, len(rows)).Equal(1)
}

func TestEncodeIsDeterministic(t *testing.T) {
	col := model.NewCollection(
		model.Record{
			Number: 1, PatientID: "p", Age: 40, Date: "2025-01-01",
			Procedure: "Appendectomy", Anaesthesia: types.AnaesthesiaGeneral,
			Outcome: types.OutcomeUneventful, MyRole: types.RoleObserver,
		},
	)

	a, err := export.Encode(col)
	gt.NoError(t, err).Required()
	b, err := export.Encode(col)
	gt.NoError(t, err).Required()

	fa, err := excelize.OpenReader(bytes.NewReader(a))
	gt.NoError(t, err).Required()
	fb, err := excelize.OpenReader(bytes.NewReader(b))
	gt.NoError(t, err).Required()

	rowsA, err := fa.GetRows(export.SheetName)
	gt.NoError(t, err).Required()
	rowsB, err := fb.GetRows(export.SheetName)
	gt.NoError(t, err).Required()
	gt.Value(t, rowsA).Equal(rowsB)
}
