package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/caselog-dev/caselog/pkg/domain/interfaces"
	"github.com/caselog-dev/caselog/pkg/domain/model"
)

// UseCases is the session facade over the case log: the collection is
// loaded once at construction, mutated only through LogCase and
// persisted wholesale after each append. One instance serves one
// operator; the mutex only guards the process against its own
// handlers.
type UseCases struct {
	store interfaces.Store

	mu    sync.RWMutex
	col   model.Collection
	dirty bool
}

// New loads the durable collection and returns the session facade.
func New(ctx context.Context, store interfaces.Store) (*UseCases, error) {
	col, err := store.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load case log")
	}
	return &UseCases{store: store, col: col}, nil
}

// Collection returns the current in-memory collection.
func (uc *UseCases) Collection() model.Collection {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.col
}

// Dirty reports whether the in-memory collection holds appends that
// are not yet durable.
func (uc *UseCases) Dirty() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.dirty
}
