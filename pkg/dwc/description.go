package dwc

import (
	"strings"

	"github.com/gnames/gndwc/pkg/checklist"
	"github.com/gnames/gndwc/pkg/config"
)

// Description is one row of the taxon description extension.
type Description struct {
	// TaxonID links the row to its taxon core record.
	TaxonID string

	// Description is the descriptor value, never empty.
	Description string

	// Type names the descriptor category ('native range', 'life form').
	Type string

	// Language is the language of the descriptor value.
	Language string
}

// Descriptor categories of the description extension.
const (
	TypeNativeRange = "native range"
	TypeLifeForm    = "life form"
)

// Descriptions builds the description extension as the union of two
// descriptor sets: native ranges first, then life forms, each in source
// row order. Native range values are trimmed and the 'Hybr' marker
// becomes 'Multiple'; life forms pass through verbatim. Records without
// a descriptor produce no row, so a taxon with neither value simply
// does not appear.
func Descriptions(
	ds *config.DatasetConfig, recs []checklist.Record,
) []Description {
	res := make([]Description, 0, len(recs)*2)
	for _, rec := range recs {
		rng := strings.TrimSpace(rec.ContinentOfOrigin)
		if rng == "Hybr" {
			rng = "Multiple"
		}
		if rng == "" {
			continue
		}
		res = append(res, Description{
			TaxonID:     rec.TaxonID,
			Description: rng,
			Type:        TypeNativeRange,
			Language:    ds.Language,
		})
	}
	for _, rec := range recs {
		if rec.LifeForm == "" {
			continue
		}
		res = append(res, Description{
			TaxonID:     rec.TaxonID,
			Description: rec.LifeForm,
			Type:        TypeLifeForm,
			Language:    ds.Language,
		})
	}
	return res
}
