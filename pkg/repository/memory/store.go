package memory

import (
	"context"
	"sync"

	"github.com/caselog-dev/caselog/pkg/domain/model"
)

// Store keeps the collection in memory only. It is used by tests and
// by the memory backend in development mode; nothing survives process
// exit.
type Store struct {
	mu  sync.RWMutex
	col model.Collection
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{col: model.NewCollection()}
}

// Load returns the held collection.
func (s *Store) Load(ctx context.Context) (model.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.NewCollection(s.col.Records()...), nil
}

// Save replaces the held collection with a copy of col.
func (s *Store) Save(ctx context.Context, col model.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.col = model.NewCollection(col.Records()...)
	return nil
}

// Close implements interfaces.Store.
func (s *Store) Close() error {
	return nil
}
