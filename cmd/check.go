/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/iocheck"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/spf13/cobra"
)

// getCheckCmd returns the check command.
func getCheckCmd() *cobra.Command {
	var (
		sheet  string
		report string
	)

	checkCmd := &cobra.Command{
		Use:   "check [input-file]",
		Short: "Report on checklist quality without writing tables",
		Long: `Inspect the checklist before transforming it.

The report covers duplicated and empty accepted names, proposed
statuses outside the degreeOfEstablishment vocabulary, native range
and life form coverage, and gnparser verification of every distinct
scientific name.

Examples:
  # Print the report to the terminal
  gndwc check checklist.xlsx

  # Keep a copy of the numbers as YAML
  gndwc check -r report.yaml checklist.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd, args, sheet, report)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	checkCmd.Flags().StringVarP(
		&sheet, "sheet", "s", "",
		"worksheet to read (empty = first sheet)",
	)
	checkCmd.Flags().StringVarP(
		&report, "report", "r", "",
		"also write the report to a YAML file",
	)

	return checkCmd
}

func runCheck(
	cmd *cobra.Command,
	args []string,
	sheet, report string,
) error {
	ctx := context.Background()

	var checkOpts []config.Option

	if len(args) == 1 {
		checkOpts = append(
			checkOpts,
			config.OptTransformInput(args[0]),
		)
	}

	if cmd.Flags().Changed("sheet") {
		checkOpts = append(
			checkOpts,
			config.OptTransformSheet(sheet),
		)
	}

	if cmd.Flags().Changed("report") {
		checkOpts = append(
			checkOpts,
			config.OptCheckReport(report),
		)
	}

	if len(checkOpts) > 0 {
		cfg.Update(checkOpts)
	}

	checker := iocheck.New(cfg)

	gn.Info("Starting checklist quality check...")
	return checker.Check(ctx)
}
