// Package config provides configuration management for GNdwc.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Dataset: short_name, title, guid, license, rights_holder, dataset_id,
//     language, kingdom, taxon_rank, nomenclatural_code, locality, country_code
//   - Transform: input, output_dir, sheet
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Transform.WithArchive (per-command)
//   - Check.Report (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNDWC_ prefix with underscores for nesting:
//
//	GNDWC_DATASET_SHORT_NAME=alien-plants-congo-drc
//	GNDWC_TRANSFORM_OUTPUT_DIR=data/processed
//	GNDWC_LOG_LEVEL=info
//	GNDWC_JOBS_NUMBER=8
//
// The generated ~/.config/gndwc/config.yaml documents every persistent field.
package config

import (
	"runtime"
)

// Config represents the complete GNdwc configuration.
type Config struct {
	// Dataset contains the checklist-wide constants stamped into the
	// Darwin Core output.
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`

	// Transform contains settings for reading the spreadsheet and writing
	// the output tables.
	Transform TransformConfig `mapstructure:"transform" yaml:"transform"`

	// Check contains settings of the check command.
	Check CheckConfig `mapstructure:"check" yaml:"check"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatasetConfig describes the source checklist. Its values become the
// constant columns of the Darwin Core tables, so adapting the tool to
// another checklist is a matter of changing this section.
type DatasetConfig struct {
	// ShortName is the dataset slug used as the taxonID namespace and as
	// the base name of the SQLite archive.
	ShortName string `mapstructure:"short_name" yaml:"short_name"`

	// Title is the full dataset title, emitted as datasetName.
	Title string `mapstructure:"title" yaml:"title"`

	// GUID identifies the dataset in the archive metadata. When empty, a
	// stable UUID v5 is derived from Title.
	GUID string `mapstructure:"guid" yaml:"guid"`

	// License is the URL of the license that covers the published data.
	License string `mapstructure:"license" yaml:"license"`

	// RightsHolder is the organization holding rights over the data.
	RightsHolder string `mapstructure:"rights_holder" yaml:"rights_holder"`

	// DatasetID is the external registry identifier of the dataset.
	// Empty until the dataset is registered.
	DatasetID string `mapstructure:"dataset_id" yaml:"dataset_id"`

	// Language is the ISO 639-1 code of the checklist metadata language.
	Language string `mapstructure:"language" yaml:"language"`

	// Kingdom is the kingdom all checklist taxa belong to.
	Kingdom string `mapstructure:"kingdom" yaml:"kingdom"`

	// TaxonRank is the rank recorded for every checklist taxon.
	TaxonRank string `mapstructure:"taxon_rank" yaml:"taxon_rank"`

	// NomenclaturalCode governs the scientific names of the checklist.
	NomenclaturalCode string `mapstructure:"nomenclatural_code" yaml:"nomenclatural_code"`

	// Locality is the geographic area the checklist covers.
	Locality string `mapstructure:"locality" yaml:"locality"`

	// CountryCode is the ISO 3166-1 alpha-2 code of the covered country.
	CountryCode string `mapstructure:"country_code" yaml:"country_code"`
}

// TransformConfig contains settings for the transform and check commands.
type TransformConfig struct {
	// Input is the path of the source spreadsheet. A positional CLI
	// argument overrides it.
	Input string `mapstructure:"input" yaml:"input"`

	// OutputDir is the directory where the Darwin Core tables are written.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// Sheet is the worksheet name to read. Empty means the first sheet of
	// the workbook.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	// WithArchive is true when a SQLite archive should be written next to
	// the CSV files. Uses pointer to distinguish between unset (nil) and
	// false. Runtime-only field.
	WithArchive *bool `mapstructure:"with_archive" yaml:"with_archive"`
}

// CheckConfig contains settings of the check command.
type CheckConfig struct {
	// Report is the path of an optional YAML report file. Empty means the
	// report goes to the terminal only. Runtime-only field.
	Report string `mapstructure:"report" yaml:"report"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Dataset: DatasetConfig{
			ShortName:         "alien-plants-congo-drc",
			Title:             "Checklist of alien plants of the Democratic Republic of the Congo",
			License:           "http://creativecommons.org/publicdomain/zero/1.0/",
			RightsHolder:      "Botanic Garden Meise",
			Language:          "en",
			Kingdom:           "Plantae",
			TaxonRank:         "species",
			NomenclaturalCode: "ICN",
			Locality:          "Democratic Republic of the Congo",
			CountryCode:       "CD",
		},
		Transform: TransformConfig{
			Input:     "data/raw/checklist.xlsx",
			OutputDir: "data/processed",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
