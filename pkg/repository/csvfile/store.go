package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/caselog-dev/caselog/pkg/domain/model"
	"github.com/caselog-dev/caselog/pkg/domain/types"
)

// Store persists the case collection as a UTF-8 comma-separated file:
// header row, then one row per record in insertion order. The column
// names and order are load-bearing; existing logs depend on them.
type Store struct {
	path string
}

// New creates a CSV file store backed by the file at path. The file
// does not need to exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the backing file if present. A missing file yields an
// empty collection whose schema is still defined, so aggregation over
// an empty log is safe.
func (s *Store) Load(ctx context.Context) (model.Collection, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.NewCollection(), nil
		}
		return model.Collection{}, goerr.Wrap(model.ErrStorageCorrupt, "cannot open storage file", goerr.V(model.PathKey, s.path))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(types.Columns())

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return model.Collection{}, goerr.Wrap(model.ErrStorageCorrupt, "storage file has no header row", goerr.V(model.PathKey, s.path))
		}
		return model.Collection{}, goerr.Wrap(model.ErrStorageCorrupt, "cannot read header row", goerr.V(model.PathKey, s.path))
	}
	if err := checkHeader(header); err != nil {
		return model.Collection{}, err
	}

	var records []model.Record
	for line := 2; ; line++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Collection{}, goerr.Wrap(model.ErrStorageCorrupt, "malformed row", goerr.V(model.PathKey, s.path), goerr.V(model.RowKey, line))
		}
		rec, err := decodeRow(row, line)
		if err != nil {
			return model.Collection{}, err
		}
		records = append(records, rec)
	}

	return model.NewCollection(records...), nil
}

// Save rewrites the backing file with the full collection. The rows
// are written to a temporary file in the same directory and atomically
// renamed over the target, so an interrupted save never leaves a
// truncated log behind.
func (s *Store) Save(ctx context.Context, col model.Collection) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".caselog-*.csv")
	if err != nil {
		return goerr.Wrap(model.ErrStorageWrite, "cannot create temporary file", goerr.V(model.PathKey, s.path))
	}
	tmpPath := tmp.Name()

	if err := writeAll(tmp, col); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return goerr.Wrap(model.ErrStorageWrite, "cannot write rows", goerr.V(model.PathKey, s.path))
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return goerr.Wrap(model.ErrStorageWrite, "cannot sync temporary file", goerr.V(model.PathKey, s.path))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(model.ErrStorageWrite, "cannot close temporary file", goerr.V(model.PathKey, s.path))
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(model.ErrStorageWrite, "cannot replace storage file", goerr.V(model.PathKey, s.path))
	}
	return nil
}

// Close implements interfaces.Store. The store holds no open handles
// between operations.
func (s *Store) Close() error {
	return nil
}

func checkHeader(header []string) error {
	cols := types.Columns()
	if len(header) != len(cols) {
		return goerr.Wrap(model.ErrStorageCorrupt, "unexpected column count",
			goerr.V("want", len(cols)), goerr.V("got", len(header)))
	}
	for i, c := range cols {
		if header[i] != c.String() {
			return goerr.Wrap(model.ErrStorageCorrupt, "unexpected column name",
				goerr.V(model.ColumnKey, i), goerr.V("want", c.String()), goerr.V("got", header[i]))
		}
	}
	return nil
}

func decodeRow(row []string, line int) (model.Record, error) {
	number, err := strconv.Atoi(row[0])
	if err != nil || number <= 0 {
		return model.Record{}, goerr.Wrap(model.ErrStorageCorrupt, "case number is not a positive integer",
			goerr.V(model.RowKey, line), goerr.V(model.NumberKey, row[0]))
	}
	age, err := strconv.Atoi(row[2])
	if err != nil {
		return model.Record{}, goerr.Wrap(model.ErrStorageCorrupt, "age is not an integer",
			goerr.V(model.RowKey, line), goerr.V("age", row[2]))
	}

	return model.Record{
		Number:         number,
		PatientID:      row[1],
		Age:            age,
		Date:           row[3],
		Hospital:       row[4],
		Consultant:     row[5],
		Diagnosis:      row[6],
		Procedure:      row[7],
		Anaesthesia:    types.Anaesthesia(row[8]),
		Outcome:        types.Outcome(row[9]),
		Notes:          row[10],
		MyRole:         types.Role(row[11]),
		PrimarySurgeon: row[12],
		Assistant:      row[13],
	}, nil
}

func writeAll(w io.Writer, col model.Collection) error {
	cw := csv.NewWriter(w)

	cols := types.Columns()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.String()
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for _, rec := range col.Records() {
		for i, c := range cols {
			row[i] = rec.Value(c)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
