package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/caselog-dev/caselog/pkg/domain/model"
)

// LogCase appends a new case and persists the whole collection. On a
// save failure the appended record stays in memory (the returned
// record is valid) but is not durable; the error carries
// model.ErrStorageWrite and the caller may retry via Flush.
func (uc *UseCases) LogCase(ctx context.Context, f model.Fields) (model.Record, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next, rec, err := uc.col.Append(f)
	if err != nil {
		return model.Record{}, goerr.Wrap(err, "failed to append case")
	}
	uc.col = next

	if err := uc.store.Save(ctx, next); err != nil {
		uc.dirty = true
		return rec, goerr.Wrap(err, "case logged but not saved", goerr.V(model.NumberKey, rec.Number))
	}
	uc.dirty = false
	return rec, nil
}

// Flush retries persisting the in-memory collection. It is a no-op
// when nothing is pending.
func (uc *UseCases) Flush(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.dirty {
		return nil
	}
	if err := uc.store.Save(ctx, uc.col); err != nil {
		return goerr.Wrap(err, "failed to save case log")
	}
	uc.dirty = false
	return nil
}
