package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gndwc/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gndwc"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gndwc"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gndwc", "logs"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Dataset defaults
		assert.Equal(t, "alien-plants-congo-drc", cfg.Dataset.ShortName)
		assert.Equal(t,
			"Checklist of alien plants of the Democratic Republic of the Congo",
			cfg.Dataset.Title)
		assert.Equal(t,
			"http://creativecommons.org/publicdomain/zero/1.0/",
			cfg.Dataset.License)
		assert.Equal(t, "Botanic Garden Meise", cfg.Dataset.RightsHolder)
		assert.Equal(t, "", cfg.Dataset.DatasetID)
		assert.Equal(t, "en", cfg.Dataset.Language)
		assert.Equal(t, "Plantae", cfg.Dataset.Kingdom)
		assert.Equal(t, "species", cfg.Dataset.TaxonRank)
		assert.Equal(t, "ICN", cfg.Dataset.NomenclaturalCode)
		assert.Equal(t, "Democratic Republic of the Congo", cfg.Dataset.Locality)
		assert.Equal(t, "CD", cfg.Dataset.CountryCode)

		// Transform defaults
		assert.Equal(t, "data/raw/checklist.xlsx", cfg.Transform.Input)
		assert.Equal(t, "data/processed", cfg.Transform.OutputDir)
		assert.Equal(t, "", cfg.Transform.Sheet)
		assert.Nil(t, cfg.Transform.WithArchive)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptionDatasetShortName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid short name",
			input:    "alien-plants-belgium",
			expected: "alien-plants-belgium",
		},
		{
			name:     "trims whitespace",
			input:    "  alien-plants-belgium  ",
			expected: "alien-plants-belgium",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "alien-plants-congo-drc", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "alien-plants-congo-drc", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatasetShortName(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Dataset.ShortName)
		})
	}
}

func TestOptionDatasetGUID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid UUID",
			input:    "b043c480-dd36-5f4f-96be-af55ab4e2ab5",
			expected: "b043c480-dd36-5f4f-96be-af55ab4e2ab5",
		},
		{
			name:     "ignores malformed UUID",
			input:    "not-a-uuid",
			expected: "", // Should keep default
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatasetGUID(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Dataset.GUID)
		})
	}
}

func TestOptionDatasetCountryCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid country code",
			input:    "BE",
			expected: "BE",
		},
		{
			name:     "normalizes to uppercase",
			input:    "be",
			expected: "BE",
		},
		{
			name:     "ignores too long value",
			input:    "BEL",
			expected: "CD", // Should keep default
		},
		{
			name:     "ignores non-letters",
			input:    "1X",
			expected: "CD", // Should keep default
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "CD", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatasetCountryCode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Dataset.CountryCode)
		})
	}
}

func TestOptionDatasetID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets identifier",
			input:    "https://doi.org/10.15468/example",
			expected: "https://doi.org/10.15468/example",
		},
		{
			name:     "empty value is valid",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatasetID(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Dataset.DatasetID)
		})
	}
}

func TestOptionTransformSheet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets sheet name",
			input:    "checklist",
			expected: "checklist",
		},
		{
			name:     "empty value selects first sheet",
			input:    "",
			expected: "",
		},
		{
			name:     "trims whitespace",
			input:    " checklist ",
			expected: "checklist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptTransformSheet(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Transform.Sheet)
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - warn",
			input:    "warn",
			expected: "warn",
		},
		{
			name:     "normalizes to lowercase",
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid format - json",
			input:    "json",
			expected: "json",
		},
		{
			name:     "sets valid format - text",
			input:    "text",
			expected: "text",
		},
		{
			name:     "sets valid format - tint",
			input:    "tint",
			expected: "tint",
		},
		{
			name:     "ignores invalid value",
			input:    "xml",
			expected: "json", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogFormat(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Format)
		})
	}
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid jobs number",
			input:    8,
			expected: 8,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: runtime.NumCPU(), // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -5,
			expected: runtime.NumCPU(), // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptJobsNumber(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestOptionTransformWithArchive(t *testing.T) {
	trueVal := true
	falseVal := false

	tests := []struct {
		name     string
		input    *bool
		expected *bool
	}{
		{
			name:     "sets to true",
			input:    &trueVal,
			expected: &trueVal,
		},
		{
			name:     "sets to false",
			input:    &falseVal,
			expected: &falseVal,
		},
		{
			name:     "ignores nil",
			input:    nil,
			expected: nil, // Should keep default (nil)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptTransformWithArchive(tt.input)
			cfg.Update([]config.Option{opt})
			if tt.expected == nil {
				assert.Nil(t, cfg.Transform.WithArchive)
			} else {
				require.NotNil(t, cfg.Transform.WithArchive)
				assert.Equal(t, *tt.expected, *cfg.Transform.WithArchive)
			}
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatasetShortName("alien-plants-belgium"),
			config.OptDatasetCountryCode("BE"),
			config.OptDatasetLocality("Belgium"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, "alien-plants-belgium", cfg.Dataset.ShortName)
		assert.Equal(t, "BE", cfg.Dataset.CountryCode)
		assert.Equal(t, "Belgium", cfg.Dataset.Locality)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, "Plantae", cfg.Dataset.Kingdom)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatasetShortName("first-checklist"),
			config.OptDatasetShortName("second-checklist"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second-checklist", cfg.Dataset.ShortName)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		// Create config with custom values
		original := config.New()
		opts := []config.Option{
			config.OptDatasetShortName("alien-plants-belgium"),
			config.OptDatasetTitle("Manual of the Alien Plants of Belgium"),
			config.OptDatasetRightsHolder("Ghent University"),
			config.OptDatasetLocality("Belgium"),
			config.OptDatasetCountryCode("BE"),
			config.OptTransformInput("data/raw/belgium.xlsx"),
			config.OptTransformOutputDir("out"),
			config.OptTransformSheet("checklist"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		}
		original.Update(opts)

		// Convert to options and apply to new config
		convertedOpts := original.ToOptions()
		newCfg := config.New()
		newCfg.Update(convertedOpts)

		// Verify persistent fields match
		assert.Equal(t, original.Dataset.ShortName, newCfg.Dataset.ShortName)
		assert.Equal(t, original.Dataset.Title, newCfg.Dataset.Title)
		assert.Equal(t, original.Dataset.RightsHolder, newCfg.Dataset.RightsHolder)
		assert.Equal(t, original.Dataset.Locality, newCfg.Dataset.Locality)
		assert.Equal(t, original.Dataset.CountryCode, newCfg.Dataset.CountryCode)
		assert.Equal(t, original.Transform.Input, newCfg.Transform.Input)
		assert.Equal(t, original.Transform.OutputDir, newCfg.Transform.OutputDir)
		assert.Equal(t, original.Transform.Sheet, newCfg.Transform.Sheet)
		assert.Equal(t, original.Log.Level, newCfg.Log.Level)
		assert.Equal(t, original.Log.Format, newCfg.Log.Format)
		assert.Equal(t, original.Log.Destination, newCfg.Log.Destination)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		trueVal := true
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptTransformWithArchive(&trueVal),
			config.OptCheckReport("report.yaml"),
		})

		// These fields should not be in ToOptions() output
		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		// Runtime fields should remain at defaults in newCfg
		assert.Equal(t, "", newCfg.HomeDir)
		assert.Nil(t, newCfg.Transform.WithArchive)
		assert.Equal(t, "", newCfg.Check.Report)
	})
}
