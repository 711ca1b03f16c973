package usecase

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/caselog-dev/caselog/pkg/domain/types"
	"github.com/caselog-dev/caselog/pkg/service/export"
)

// Export encodes the (optionally filtered) current view as an xlsx
// workbook held in memory. The durable store is not touched.
func (uc *UseCases) Export(predicates map[types.Field]string) ([]byte, error) {
	data, err := export.Encode(uc.Cases(predicates))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to export case log")
	}
	return data, nil
}
