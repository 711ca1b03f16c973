package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/caselog-dev/caselog/pkg/domain/interfaces"
	"github.com/caselog-dev/caselog/pkg/domain/model"
	"github.com/caselog-dev/caselog/pkg/domain/types"
	"github.com/caselog-dev/caselog/pkg/repository/csvfile"
	"github.com/caselog-dev/caselog/pkg/repository/memory"
)

func sampleFields() model.Fields {
	return model.Fields{
		PatientID:      "2025-001",
		Age:            34,
		Date:           "2025-01-10",
		Hospital:       "General",
		Consultant:     "Dr. X",
		Diagnosis:      "Appendicitis",
		Procedure:      "Appendectomy",
		Anaesthesia:    types.AnaesthesiaGeneral,
		Outcome:        types.OutcomeUneventful,
		Notes:          "",
		MyRole:         types.RolePrimarySurgeon,
		PrimarySurgeon: "Dr. X",
		Assistant:      "",
	}
}

func runStoreTest(t *testing.T, newStore func(t *testing.T) interfaces.Store) {
	t.Helper()

	t.Run("Load of a fresh store is empty, not an error", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		col, err := store.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, col.Len()).Equal(0)
		// Aggregation over the empty schema is defined.
		gt.Number(t, len(model.GroupCounts(col, types.FieldProcedure))).Equal(0)
		gt.Number(t, col.NextNumber()).Equal(1)
	})

	t.Run("Save then Load reproduces every field", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		f := sampleFields()
		// Leading zeros and punctuation must survive the round trip.
		f.PatientID = "007-2025"
		f.Notes = "line one\nline two, with comma and \"quotes\""

		col, rec, err := model.NewCollection().Append(f)
		gt.NoError(t, err).Required()

		gt.NoError(t, store.Save(ctx, col)).Required()

		loaded, err := store.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, loaded.Len()).Equal(1)
		gt.Value(t, loaded.At(0)).Equal(rec)
	})

	t.Run("Save preserves insertion order and numbering gaps", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		r3, r1, r4 := numbered(3), numbered(1), numbered(4)
		col := model.NewCollection(r3, r1, r4)
		gt.NoError(t, store.Save(ctx, col)).Required()

		loaded, err := store.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, loaded.Len()).Equal(3)
		gt.Number(t, loaded.At(0).Number).Equal(3)
		gt.Number(t, loaded.At(1).Number).Equal(1)
		gt.Number(t, loaded.At(2).Number).Equal(4)
		gt.Number(t, loaded.NextNumber()).Equal(5)
	})

	t.Run("Save overwrites wholesale", func(t *testing.T) {
		store := newStore(t)
		ctx := context.Background()

		col1, _, err := model.NewCollection().Append(sampleFields())
		gt.NoError(t, err).Required()
		gt.NoError(t, store.Save(ctx, col1)).Required()

		col2, _, err := col1.Append(sampleFields())
		gt.NoError(t, err).Required()
		gt.NoError(t, store.Save(ctx, col2)).Required()

		loaded, err := store.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Number(t, loaded.Len()).Equal(2)
		gt.Number(t, loaded.At(1).Number).Equal(2)
	})
}

func numbered(n int) model.Record {
	return model.Record{
		Number:      n,
		PatientID:   "p",
		Age:         60,
		Date:        "2024-12-31",
		Procedure:   "Hernia repair",
		Anaesthesia: types.AnaesthesiaLocal,
		Outcome:     types.OutcomeUneventful,
		MyRole:      types.RoleAssistant,
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreTest(t, func(t *testing.T) interfaces.Store {
		return memory.New()
	})
}

func TestCSVFileStore(t *testing.T) {
	runStoreTest(t, func(t *testing.T) interfaces.Store {
		return csvfile.New(filepath.Join(t.TempDir(), "surgical_log.csv"))
	})
}
