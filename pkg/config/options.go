package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatasetShortName sets the dataset slug used as the taxonID namespace.
func OptDatasetShortName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Short Name", s) {
			c.Dataset.ShortName = s
		}
	}
}

// OptDatasetTitle sets the full dataset title (datasetName column).
func OptDatasetTitle(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Title", s) {
			c.Dataset.Title = s
		}
	}
}

// OptDatasetGUID sets an explicit dataset GUID for the archive metadata.
// The value must parse as a UUID. When no GUID is given, one is derived
// from the dataset title.
func OptDatasetGUID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidGUID("Dataset GUID", s) {
			c.Dataset.GUID = s
		}
	}
}

// OptDatasetLicense sets the URL of the data license.
func OptDatasetLicense(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset License", s) {
			c.Dataset.License = s
		}
	}
}

// OptDatasetRightsHolder sets the organization holding rights over the data.
func OptDatasetRightsHolder(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Rights Holder", s) {
			c.Dataset.RightsHolder = s
		}
	}
}

// OptDatasetID sets the external registry identifier of the dataset.
// An empty value is valid: unregistered checklists have no identifier yet.
func OptDatasetID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Dataset.DatasetID = s
	}
}

// OptDatasetLanguage sets the ISO 639-1 language code of the metadata.
func OptDatasetLanguage(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidString("Dataset Language", s) {
			c.Dataset.Language = s
		}
	}
}

// OptDatasetKingdom sets the kingdom of every checklist taxon.
func OptDatasetKingdom(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Kingdom", s) {
			c.Dataset.Kingdom = s
		}
	}
}

// OptDatasetTaxonRank sets the rank recorded for every checklist taxon.
func OptDatasetTaxonRank(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidString("Dataset Taxon Rank", s) {
			c.Dataset.TaxonRank = s
		}
	}
}

// OptDatasetNomenclaturalCode sets the nomenclatural code of the names.
func OptDatasetNomenclaturalCode(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Nomenclatural Code", s) {
			c.Dataset.NomenclaturalCode = s
		}
	}
}

// OptDatasetLocality sets the geographic area the checklist covers.
func OptDatasetLocality(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Dataset Locality", s) {
			c.Dataset.Locality = s
		}
	}
}

// OptDatasetCountryCode sets the ISO 3166-1 alpha-2 country code.
func OptDatasetCountryCode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	return func(c *Config) {
		if isValidCountryCode("Dataset Country Code", s) {
			c.Dataset.CountryCode = s
		}
	}
}

// OptTransformInput sets the path of the source spreadsheet.
func OptTransformInput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input File", s) {
			c.Transform.Input = s
		}
	}
}

// OptTransformOutputDir sets the directory for the Darwin Core tables.
func OptTransformOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Transform.OutputDir = s
		}
	}
}

// OptTransformSheet sets the worksheet name to read.
// An empty value is valid and selects the first sheet of the workbook.
func OptTransformSheet(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Transform.Sheet = s
	}
}

// OptTransformWithArchive sets whether a SQLite archive is written next
// to the CSV files. Uses pointer to distinguish between unset (nil) and
// false. Runtime-only field - not in ToOptions().
func OptTransformWithArchive(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Transform.WithArchive = b
		}
	}
}

// OptCheckReport sets the path of an optional YAML report written by the
// check command. An empty value is valid and keeps the report terminal-only.
// Runtime-only field - not in ToOptions().
func OptCheckReport(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Check.Report = s
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdin", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
