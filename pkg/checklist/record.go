// Package checklist models the rows of an alien species checklist
// spreadsheet and derives stable taxon identifiers from them.
//
// The package is pure: it performs no I/O and keeps cell values exactly
// as they appear in the source. The empty string stands for a missing
// cell everywhere.
package checklist

// Column names of the source spreadsheet after header normalization.
// The loader matches columns by these names; extra columns are ignored.
const (
	ColAcceptedName      = "accepted_name"
	ColFamily            = "family"
	ColProposedStatus    = "proposed_status"
	ColContinentOfOrigin = "continent_of_origin"
	ColLifeForm          = "life_form"
	ColEarliestRecord    = "earliest_record"
	ColLatestRecord      = "latest_record"
)

// Record is one cleaned row of the source checklist.
type Record struct {
	// TaxonID is the stable identifier derived from AcceptedName.
	// Empty until AssignTaxonIDs runs.
	TaxonID string

	// AcceptedName is the accepted scientific name of the taxon,
	// usually with authorship.
	AcceptedName string

	// Family is the botanical family of the taxon.
	Family string

	// ProposedStatus is the invasion status proposed by the checklist
	// authors, for example 'Naturalised, invasive'.
	ProposedStatus string

	// ContinentOfOrigin is the native range of the taxon.
	ContinentOfOrigin string

	// LifeForm is the life form category of the taxon.
	LifeForm string

	// EarliestRecord is the year of the first record in the studied area.
	EarliestRecord string

	// LatestRecord is the year of the most recent record, or an undated
	// marker.
	LatestRecord string
}

// Columns lists the source columns the transformation consumes, in the
// order they usually appear in the spreadsheet.
func Columns() []string {
	return []string{
		ColAcceptedName,
		ColFamily,
		ColProposedStatus,
		ColContinentOfOrigin,
		ColLifeForm,
		ColEarliestRecord,
		ColLatestRecord,
	}
}

// FromRow builds a Record from a normalized-header to cell-value map.
// Values are taken verbatim; columns missing from the map leave their
// fields empty.
func FromRow(row map[string]string) Record {
	return Record{
		AcceptedName:      row[ColAcceptedName],
		Family:            row[ColFamily],
		ProposedStatus:    row[ColProposedStatus],
		ContinentOfOrigin: row[ColContinentOfOrigin],
		LifeForm:          row[ColLifeForm],
		EarliestRecord:    row[ColEarliestRecord],
		LatestRecord:      row[ColLatestRecord],
	}
}
