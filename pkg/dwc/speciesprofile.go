package dwc

import (
	"github.com/gnames/gndwc/pkg/checklist"
)

// SpeciesProfile is one row of the species profile extension.
type SpeciesProfile struct {
	// TaxonID links the row to its taxon core record.
	TaxonID string

	// IsMarine tells whether the taxon lives in marine habitats.
	IsMarine string

	// IsFreshwater tells whether the taxon lives in freshwater habitats.
	IsFreshwater string

	// IsTerrestrial tells whether the taxon lives on land.
	IsTerrestrial string
}

// SpeciesProfiles returns no rows: the source checklist carries no
// habitat data yet, so the extension is emitted header-only to keep the
// output set schema-complete for downstream consumers.
func SpeciesProfiles(_ []checklist.Record) []SpeciesProfile {
	return nil
}
