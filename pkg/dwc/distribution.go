package dwc

import (
	"github.com/gnames/gndwc/pkg/checklist"
	"github.com/gnames/gndwc/pkg/config"
)

// Distribution is one row of the Darwin Core distribution extension.
type Distribution struct {
	// TaxonID links the row to its taxon core record.
	TaxonID string

	// Locality is the geographic area the checklist covers.
	Locality string

	// CountryCode is the ISO 3166-1 alpha-2 code of the covered country.
	CountryCode string

	// EstablishmentMeans tells how the taxon arrived: 'introduced' or
	// 'uncertain'.
	EstablishmentMeans string

	// DegreeOfEstablishment is the controlled vocabulary value recoded
	// from the proposed status, empty when the status is unrecognized.
	DegreeOfEstablishment string

	// EventDate is the observation period derived from the earliest and
	// latest record years.
	EventDate string
}

// undatedMarker is the 's.d.' (sine dato) value checklist authors use
// for records without a date.
const undatedMarker = "s.d."

// undatedLatestKeeps lists earliest_record values that stand alone when
// latest_record carries the undated marker. The single 1937 entry works
// around a quirk of the current source file; remove it once the source
// is fixed.
var undatedLatestKeeps = map[string]struct{}{
	"1937": {},
}

// degreeTable recodes proposed statuses onto the Darwin Core
// degreeOfEstablishment vocabulary. Matching is exact.
var degreeTable = map[string]string{
	"Casual":                             "casual",
	"casual":                             "casual",
	"Naturalised":                        "established",
	"Naturalised, cryptogenic":           "established",
	"Naturalised, invasive":              "invasive",
	"Naturalised, cryptogenic, invasive": "invasive",
}

// Distributions maps every checklist record onto one row of the
// distribution extension; nothing is deduplicated, so the row count
// equals the record count. The second return value lists the distinct
// proposed_status values that fall outside the degreeOfEstablishment
// vocabulary, in first-seen order, for the caller to log.
func Distributions(
	ds *config.DatasetConfig, recs []checklist.Record,
) ([]Distribution, []string) {
	res := make([]Distribution, 0, len(recs))
	var unmapped []string
	seen := make(map[string]struct{})
	for _, rec := range recs {
		degree, ok := DegreeOfEstablishment(rec.ProposedStatus)
		// A missing status is an empty cell, not a vocabulary miss.
		if !ok && rec.ProposedStatus != "" {
			if _, dup := seen[rec.ProposedStatus]; !dup {
				seen[rec.ProposedStatus] = struct{}{}
				unmapped = append(unmapped, rec.ProposedStatus)
			}
		}
		res = append(res, Distribution{
			TaxonID:               rec.TaxonID,
			Locality:              ds.Locality,
			CountryCode:           ds.CountryCode,
			EstablishmentMeans:    EstablishmentMeans(rec.ProposedStatus),
			DegreeOfEstablishment: degree,
			EventDate:             EventDate(rec.EarliestRecord, rec.LatestRecord),
		})
	}
	return res, unmapped
}

// EstablishmentMeans maps the proposed status onto the Darwin Core
// establishmentMeans vocabulary. Cryptogenic statuses become
// 'uncertain'; everything else in an alien checklist is 'introduced'.
func EstablishmentMeans(status string) string {
	switch status {
	case "Naturalised, cryptogenic", "Naturalised, cryptogenic, invasive":
		return "uncertain"
	default:
		return "introduced"
	}
}

// DegreeOfEstablishment returns the controlled vocabulary value for a
// proposed status. The second return value is false when the status is
// outside the recoding table; the degree is then empty and the caller
// should report the status.
func DegreeOfEstablishment(status string) (string, bool) {
	res, ok := degreeTable[status]
	return res, ok
}

// EventDate derives the observation period from the earliest and latest
// record years. Rules apply in order, first match wins:
//
//  1. no earliest year: the latest value stands alone (covers the
//     no-data-at-all case too);
//  2. both years undated: no date;
//  3. no latest year: the earliest value stands alone;
//  4. latest undated with an earliest listed in undatedLatestKeeps: the
//     earliest year stands alone;
//  5. otherwise: 'earliest / latest' range, undated markers kept
//     verbatim.
func EventDate(earliest, latest string) string {
	switch {
	case earliest == "":
		return latest
	case earliest == undatedMarker && latest == undatedMarker:
		return ""
	case latest == "":
		return earliest
	case latest == undatedMarker && earliestStandsAlone(earliest):
		return earliest
	default:
		return earliest + " / " + latest
	}
}

func earliestStandsAlone(earliest string) bool {
	_, ok := undatedLatestKeeps[earliest]
	return ok
}
