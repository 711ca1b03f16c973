package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/caselog-dev/caselog/pkg/domain/interfaces"
	"github.com/caselog-dev/caselog/pkg/repository/csvfile"
	"github.com/caselog-dev/caselog/pkg/repository/memory"
	"github.com/caselog-dev/caselog/pkg/utils/logging"
)

// Store holds CLI flags for store backend configuration
type Store struct {
	backend string
	path    string
}

// Flags returns CLI flags for store configuration
func (s *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "store",
			Usage:       "Store backend (csv or memory)",
			Value:       "csv",
			Sources:     cli.EnvVars("CASELOG_STORE"),
			Destination: &s.backend,
		},
		&cli.StringFlag{
			Name:        "data-file",
			Usage:       "Path of the CSV case log",
			Value:       "surgical_log.csv",
			Sources:     cli.EnvVars("CASELOG_DATA_FILE"),
			Destination: &s.path,
		},
	}
}

// Path returns the configured data file path.
func (s *Store) Path() string {
	return s.path
}

// SetPath overrides the data file path. Used when the config file
// supplies a path and the flag was left at its default.
func (s *Store) SetPath(path string) {
	s.path = path
}

// Configure initializes and returns a store based on the configured
// backend. The caller is responsible for closing the returned store.
func (s *Store) Configure(ctx context.Context) (interfaces.Store, error) {
	switch s.backend {
	case "csv":
		logging.Default().Info("Using CSV file store", "path", s.path)
		return csvfile.New(s.path), nil

	case "memory":
		logging.Default().Info("Using in-memory store (nothing will be persisted)")
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "cannot configure store", goerr.V(BackendKey, s.backend))
	}
}
