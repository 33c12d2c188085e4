package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/google/uuid"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, WithArchive, Check.Report).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Dataset.ShortName
	if s != "" {
		res = append(res, OptDatasetShortName(s))
	}
	s = c.Dataset.Title
	if s != "" {
		res = append(res, OptDatasetTitle(s))
	}
	s = c.Dataset.GUID
	if s != "" {
		res = append(res, OptDatasetGUID(s))
	}
	s = c.Dataset.License
	if s != "" {
		res = append(res, OptDatasetLicense(s))
	}
	s = c.Dataset.RightsHolder
	if s != "" {
		res = append(res, OptDatasetRightsHolder(s))
	}
	s = c.Dataset.DatasetID
	if s != "" {
		res = append(res, OptDatasetID(s))
	}
	s = c.Dataset.Language
	if s != "" {
		res = append(res, OptDatasetLanguage(s))
	}
	s = c.Dataset.Kingdom
	if s != "" {
		res = append(res, OptDatasetKingdom(s))
	}
	s = c.Dataset.TaxonRank
	if s != "" {
		res = append(res, OptDatasetTaxonRank(s))
	}
	s = c.Dataset.NomenclaturalCode
	if s != "" {
		res = append(res, OptDatasetNomenclaturalCode(s))
	}
	s = c.Dataset.Locality
	if s != "" {
		res = append(res, OptDatasetLocality(s))
	}
	s = c.Dataset.CountryCode
	if s != "" {
		res = append(res, OptDatasetCountryCode(s))
	}

	s = c.Transform.Input
	if s != "" {
		res = append(res, OptTransformInput(s))
	}
	s = c.Transform.OutputDir
	if s != "" {
		res = append(res, OptTransformOutputDir(s))
	}
	s = c.Transform.Sheet
	if s != "" {
		res = append(res, OptTransformSheet(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidGUID(name, s string) bool {
	if _, err := uuid.Parse(s); err != nil {
		gn.Warn("<em>%s</em> must be a valid UUID, ignoring '%s'", name, s)
		return false
	}
	return true
}

func isValidCountryCode(name, s string) bool {
	res := len(s) == 2 &&
		s[0] >= 'A' && s[0] <= 'Z' &&
		s[1] >= 'A' && s[1] <= 'Z'
	if !res {
		gn.Warn(
			"<em>%s</em> has to be a 2-letter ISO country code, ignoring '%s'",
			name, s,
		)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stdin": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
