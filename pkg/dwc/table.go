package dwc

import (
	"slices"
	"strings"
)

// Table is a rendered output table: a fixed header plus rows of cells
// ready for CSV or SQLite serialization. Cells hold the empty string
// for missing values, and rows are sorted ascending by taxonID.
type Table struct {
	// Name is the base file and table name, e.g. 'taxon'.
	Name string

	// Columns holds the header cells in Darwin Core term order.
	Columns []string

	// Rows holds the data cells; every row matches Columns in length.
	Rows [][]string
}

// Names of the output tables.
const (
	TableTaxon          = "taxon"
	TableDistribution   = "distribution"
	TableSpeciesProfile = "speciesprofile"
	TableDescription    = "description"
)

// TaxonTable renders the taxon core.
func TaxonTable(taxa []Taxon) Table {
	taxa = sortedByID(taxa, func(t Taxon) string { return t.TaxonID })
	rows := make([][]string, len(taxa))
	for i, v := range taxa {
		rows[i] = []string{
			v.Language, v.License, v.RightsHolder, v.DatasetID,
			v.DatasetName, v.TaxonID, v.ScientificName, v.Kingdom,
			v.Family, v.TaxonRank, v.NomenclaturalCode,
		}
	}
	return Table{
		Name: TableTaxon,
		Columns: []string{
			"language", "license", "rightsHolder", "datasetID",
			"datasetName", "taxonID", "scientificName", "kingdom",
			"family", "taxonRank", "nomenclaturalCode",
		},
		Rows: rows,
	}
}

// DistributionTable renders the distribution extension.
func DistributionTable(dists []Distribution) Table {
	dists = sortedByID(dists, func(d Distribution) string { return d.TaxonID })
	rows := make([][]string, len(dists))
	for i, v := range dists {
		rows[i] = []string{
			v.TaxonID, v.Locality, v.CountryCode,
			v.EstablishmentMeans, v.DegreeOfEstablishment, v.EventDate,
		}
	}
	return Table{
		Name: TableDistribution,
		Columns: []string{
			"taxonID", "locality", "countryCode",
			"establishmentMeans", "degreeOfEstablishment", "eventDate",
		},
		Rows: rows,
	}
}

// SpeciesProfileTable renders the species profile extension.
func SpeciesProfileTable(profiles []SpeciesProfile) Table {
	profiles = sortedByID(profiles,
		func(p SpeciesProfile) string { return p.TaxonID })
	rows := make([][]string, len(profiles))
	for i, v := range profiles {
		rows[i] = []string{
			v.TaxonID, v.IsMarine, v.IsFreshwater, v.IsTerrestrial,
		}
	}
	return Table{
		Name: TableSpeciesProfile,
		Columns: []string{
			"taxonID", "isMarine", "isFreshwater", "isTerrestrial",
		},
		Rows: rows,
	}
}

// DescriptionTable renders the description extension.
func DescriptionTable(descs []Description) Table {
	descs = sortedByID(descs, func(d Description) string { return d.TaxonID })
	rows := make([][]string, len(descs))
	for i, v := range descs {
		rows[i] = []string{v.TaxonID, v.Description, v.Type, v.Language}
	}
	return Table{
		Name: TableDescription,
		Columns: []string{
			"taxonID", "description", "type", "language",
		},
		Rows: rows,
	}
}

// sortedByID returns a copy of items stably sorted by taxonID. Stable
// order keeps equal-key rows in mapper output order, which makes the
// whole pipeline deterministic.
func sortedByID[T any](items []T, id func(T) string) []T {
	items = slices.Clone(items)
	slices.SortStableFunc(items, func(a, b T) int {
		return strings.Compare(id(a), id(b))
	})
	return items
}
