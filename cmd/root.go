/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/iofs"
	"github.com/gnames/gndwc/internal/iologger"
	app "github.com/gnames/gndwc/pkg"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "gndwc",
	Short:   "Convert an alien plants checklist to Darwin Core tables",
	Long: `gndwc converts the Checklist of alien plants of the Democratic
Republic of the Congo from its source spreadsheet into Darwin Core
tables: the taxon core plus the distribution, speciesprofile and
description extensions.

The conversion is deterministic: the same workbook always produces
byte-identical CSV files, and taxon identifiers stay stable between
runs and releases.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNDWC_*)
  3. Config file (~/.config/gndwc/config.yaml)
  4. Built-in defaults

Environment variables mirror the config file keys, for example
dataset.short_name becomes GNDWC_DATASET_SHORT_NAME.`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Appends to the log file the bootstrap defaults created.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "gndwc version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gndwc")

	rootCmd.AddCommand(getTransformCmd())
	rootCmd.AddCommand(getCheckCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNDWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Dataset configuration
	v.BindEnv("dataset.short_name", "GNDWC_DATASET_SHORT_NAME")
	v.BindEnv("dataset.title", "GNDWC_DATASET_TITLE")
	v.BindEnv("dataset.guid", "GNDWC_DATASET_GUID")
	v.BindEnv("dataset.license", "GNDWC_DATASET_LICENSE")
	v.BindEnv("dataset.rights_holder", "GNDWC_DATASET_RIGHTS_HOLDER")
	v.BindEnv("dataset.dataset_id", "GNDWC_DATASET_DATASET_ID")
	v.BindEnv("dataset.language", "GNDWC_DATASET_LANGUAGE")
	v.BindEnv("dataset.kingdom", "GNDWC_DATASET_KINGDOM")
	v.BindEnv("dataset.taxon_rank", "GNDWC_DATASET_TAXON_RANK")
	v.BindEnv("dataset.nomenclatural_code", "GNDWC_DATASET_NOMENCLATURAL_CODE")
	v.BindEnv("dataset.locality", "GNDWC_DATASET_LOCALITY")
	v.BindEnv("dataset.country_code", "GNDWC_DATASET_COUNTRY_CODE")

	// Transform configuration
	v.BindEnv("transform.input", "GNDWC_TRANSFORM_INPUT")
	v.BindEnv("transform.output_dir", "GNDWC_TRANSFORM_OUTPUT_DIR")
	v.BindEnv("transform.sheet", "GNDWC_TRANSFORM_SHEET")

	// Log configuration
	v.BindEnv("log.level", "GNDWC_LOG_LEVEL")
	v.BindEnv("log.format", "GNDWC_LOG_FORMAT")
	v.BindEnv("log.destination", "GNDWC_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNDWC_JOBS_NUMBER")

	v.AutomaticEnv()
}
