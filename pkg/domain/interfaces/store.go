package interfaces

import (
	"context"

	"github.com/caselog-dev/caselog/pkg/domain/model"
)

// Store defines durable persistence of the case collection. Load
// reads the whole collection at session start; Save rewrites it
// wholesale after each append.
type Store interface {
	// Load reads the durable collection. A missing backing file yields
	// an empty collection, not an error; an unparseable one yields
	// model.ErrStorageCorrupt.
	Load(ctx context.Context) (model.Collection, error)

	// Save replaces the durable collection with col. Failure yields
	// model.ErrStorageWrite and leaves the previous durable state
	// intact.
	Save(ctx context.Context, col model.Collection) error

	// Close releases any resources held by the store.
	Close() error
}
