package usecase

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/caselog-dev/caselog/pkg/domain/model"
	"github.com/caselog-dev/caselog/pkg/domain/types"
)

// Cases returns the current collection filtered by the given substring
// predicates. Nil or all-empty predicates return the full log.
func (uc *UseCases) Cases(predicates map[types.Field]string) model.Collection {
	return model.Filter(uc.Collection(), predicates)
}

// Summary returns the dashboard metric tiles.
func (uc *UseCases) Summary() model.Summary {
	return model.Summarize(uc.Collection())
}

// GroupCounts returns per-value counts of the given field, ordered by
// descending count.
func (uc *UseCases) GroupCounts(field types.Field) ([]model.GroupCount, error) {
	if !field.IsValid() {
		return nil, goerr.Wrap(model.ErrUnknownField, "cannot group", goerr.V(model.FieldKey, string(field)))
	}
	return model.GroupCounts(uc.Collection(), field), nil
}
