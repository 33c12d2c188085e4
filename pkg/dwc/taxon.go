// Package dwc maps checklist records onto Darwin Core star-schema
// tables: the taxon core plus the distribution, description and species
// profile extensions.
//
// All mappers are pure functions. They take the dataset constants and
// the cleaned checklist rows and return newly-built narrow records; the
// empty string stands for a missing value throughout.
package dwc

import (
	"github.com/gnames/gndwc/pkg/checklist"
	"github.com/gnames/gndwc/pkg/config"
)

// Taxon is one row of the Darwin Core taxon core.
type Taxon struct {
	// Language is the metadata language of the dataset.
	Language string

	// License is the URL of the license covering the data.
	License string

	// RightsHolder is the organization holding rights over the data.
	RightsHolder string

	// DatasetID is the external registry identifier, empty when the
	// dataset is not registered yet.
	DatasetID string

	// DatasetName is the full dataset title.
	DatasetName string

	// TaxonID is the stable identifier derived from the accepted name.
	TaxonID string

	// ScientificName is the accepted name exactly as it appears in the
	// checklist.
	ScientificName string

	// Kingdom is the kingdom shared by all checklist taxa.
	Kingdom string

	// Family is the botanical family from the checklist.
	Family string

	// TaxonRank is the rank shared by all checklist taxa.
	TaxonRank string

	// NomenclaturalCode governs the scientific names of the checklist.
	NomenclaturalCode string
}

// Taxa maps checklist records onto the taxon core. Every distinct
// taxonID yields exactly one row: the first occurrence of a name wins
// and later duplicates are dropped, so the row count equals the number
// of distinct accepted names.
func Taxa(ds *config.DatasetConfig, recs []checklist.Record) []Taxon {
	res := make([]Taxon, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		if _, ok := seen[rec.TaxonID]; ok {
			continue
		}
		seen[rec.TaxonID] = struct{}{}
		res = append(res, Taxon{
			Language:          ds.Language,
			License:           ds.License,
			RightsHolder:      ds.RightsHolder,
			DatasetID:         ds.DatasetID,
			DatasetName:       ds.Title,
			TaxonID:           rec.TaxonID,
			ScientificName:    rec.AcceptedName,
			Kingdom:           ds.Kingdom,
			Family:            rec.Family,
			TaxonRank:         ds.TaxonRank,
			NomenclaturalCode: ds.NomenclaturalCode,
		})
	}
	return res
}
