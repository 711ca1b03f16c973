package export

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"

	"github.com/caselog-dev/caselog/pkg/domain/model"
	"github.com/caselog-dev/caselog/pkg/domain/types"
)

// SheetName is the single sheet of the exported workbook.
const SheetName = "SurgicalLog"

// Encode serializes the collection into a single-sheet xlsx workbook:
// header row of column names, one row per record in log order, same
// column order as the durable file. The result is an in-memory buffer;
// the durable store is never touched.
func Encode(col model.Collection) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory workbook

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, goerr.Wrap(model.ErrEncoding, "cannot name sheet", goerr.V("sheet", SheetName))
	}

	cols := types.Columns()
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c.String()
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, goerr.Wrap(model.ErrEncoding, "cannot write header row")
	}

	for i, rec := range col.Records() {
		row := []interface{}{
			rec.Number,
			rec.PatientID,
			rec.Age,
			rec.Date,
			rec.Hospital,
			rec.Consultant,
			rec.Diagnosis,
			rec.Procedure,
			rec.Anaesthesia.String(),
			rec.Outcome.String(),
			rec.Notes,
			rec.MyRole.String(),
			rec.PrimarySurgeon,
			rec.Assistant,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, goerr.Wrap(model.ErrEncoding, "cannot write row", goerr.V(model.RowKey, i+2))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, goerr.Wrap(model.ErrEncoding, "cannot serialize workbook")
	}
	return buf.Bytes(), nil
}
