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
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/iotransform"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/spf13/cobra"
)

// getTransformCmd returns the transform command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getTransformCmd() *cobra.Command {
	var (
		outputDir   string
		sheet       string
		withArchive bool
	)

	transformCmd := &cobra.Command{
		Use:   "transform [input-file]",
		Short: "Convert the checklist spreadsheet to Darwin Core tables",
		Long: `Convert the source checklist workbook into four Darwin Core CSV
tables: taxon, distribution, speciesprofile and description.

This command:
  1. Reads the checklist worksheet (first sheet unless --sheet is given)
  2. Derives a stable taxonID for every accepted name
  3. Maps the rows onto the Darwin Core star schema
  4. Writes the four CSV files atomically, sorted by taxonID

The input file comes from the positional argument or from
'transform.input' in the config file.

Examples:
  # Transform with the configured defaults
  gndwc transform checklist.xlsx

  # Pick a worksheet and an output directory
  gndwc transform -s Checklist -o ./dwca checklist.xlsx

  # Also write a SQLite archive next to the CSV files
  gndwc transform -a checklist.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTransform(cmd, args, outputDir, sheet, withArchive)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	transformCmd.Flags().StringVarP(
		&outputDir, "output", "o", "",
		"directory for the Darwin Core tables",
	)
	transformCmd.Flags().StringVarP(
		&sheet, "sheet", "s", "",
		"worksheet to read (empty = first sheet)",
	)
	transformCmd.Flags().BoolVarP(
		&withArchive, "archive", "a", false,
		"also write a SQLite archive",
	)

	return transformCmd
}

func runTransform(
	cmd *cobra.Command,
	args []string,
	outputDir, sheet string,
	withArchive bool,
) error {
	ctx := context.Background()

	// Build options from the positional argument and explicitly set flags
	var transformOpts []config.Option

	if len(args) == 1 {
		transformOpts = append(
			transformOpts,
			config.OptTransformInput(args[0]),
		)
	}

	if cmd.Flags().Changed("output") {
		transformOpts = append(
			transformOpts,
			config.OptTransformOutputDir(outputDir),
		)
	}

	if cmd.Flags().Changed("sheet") {
		transformOpts = append(
			transformOpts,
			config.OptTransformSheet(sheet),
		)
	}

	if cmd.Flags().Changed("archive") {
		transformOpts = append(
			transformOpts,
			config.OptTransformWithArchive(&withArchive),
		)
	}

	if len(transformOpts) > 0 {
		cfg.Update(transformOpts)
	}

	transformer := iotransform.New(cfg)

	gn.Info("Starting checklist transformation...")
	if err := transformer.Transform(ctx); err != nil {
		return err
	}

	gn.Info(`Next steps:
	 - Review the tables in '<em>%s</em>'
	 - Run '<em>gndwc check</em>' for a data-quality report
`, cfg.Transform.OutputDir)

	return nil
}
