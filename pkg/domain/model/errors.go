package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the case log core
var (
	// ErrStorageCorrupt means the durable file exists but does not parse
	// into the expected column schema. It is never auto-recovered; the
	// operator must fix or discard the file.
	ErrStorageCorrupt = goerr.New("storage file is corrupt")

	// ErrStorageWrite means an I/O failure during save. The in-memory
	// state is kept but must not be treated as durable.
	ErrStorageWrite = goerr.New("failed to write storage file")

	// ErrEncoding means the export serialization failed. The durable
	// store is unaffected.
	ErrEncoding = goerr.New("failed to encode export")

	// ErrInvalidRecord means the supplied field values do not form a
	// valid case record.
	ErrInvalidRecord = goerr.New("invalid case record")

	// ErrUnknownField means a field name does not match any column.
	ErrUnknownField = goerr.New("unknown field")
)

// Context keys for error values
const (
	PathKey   = "path"
	FieldKey  = "field"
	ColumnKey = "column"
	RowKey    = "row"
	NumberKey = "number"
)
