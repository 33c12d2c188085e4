// make-checklist writes a small sample checklist spreadsheet for
// manual testing of the gndwc converter.
//
// The workbook mirrors the layout of the published checklist:
//   - Row 1 holds the dataset title and is discarded by the loader
//   - Row 2 holds the column headers
//   - Every later row describes one alien taxon
//
// The sample rows cover the shapes the converter handles: multi-part
// statuses, cryptogenic taxa, undated records ('s.d.'), a duplicated
// accepted name, a status outside the controlled vocabulary, and a
// fully empty row.
//
// Usage:
//
//	go run . <output.xlsx>
//
// Examples:
//
//	go run . testdata/checklist-sample.xlsx
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"
)

const (
	// Worksheet that receives the sample rows.
	sheetName = "Sheet1"

	// Title of the sampled dataset, stored in the discarded first row.
	datasetTitle = "Checklist of alien plants of the Democratic Republic of the Congo"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output.xlsx>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  output  Path for the sample checklist workbook\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s testdata/checklist-sample.xlsx\n", os.Args[0])
		os.Exit(1)
	}

	outputPath := os.Args[1]

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	rows := sampleRows()
	logger.Info("writing sample checklist",
		"output", outputPath,
		"rows", len(rows),
	)

	if err := writeWorkbook(outputPath, rows); err != nil {
		logger.Error("sample generation failed", "error", err)
		os.Exit(1)
	}

	logger.Info("sample checklist ready", "output", outputPath)
}

// sampleRows returns the workbook rows, starting with the title and
// header rows the loader expects.
func sampleRows() [][]string {
	return [][]string{
		{datasetTitle},
		{
			"Accepted name", "Family", "Proposed status",
			"Continent of origin", "Life form",
			"Earliest record", "Latest record",
		},
		{
			"Acacia auriculiformis A.Cunn. ex Benth.", "Fabaceae",
			"Casual", "Australasia", "Tree", "1958", "2004",
		},
		{
			"Ageratum conyzoides L.", "Asteraceae",
			"Naturalised, invasive", "America", "Herb", "1888", "2005",
		},
		{
			"Commelina benghalensis L.", "Commelinaceae",
			"Naturalised, cryptogenic", "", "Herb", "s.d.", "s.d.",
		},
		{
			"Eichhornia crassipes (Mart.) Solms", "Pontederiaceae",
			"Naturalised, invasive", "America", "Aquatic herb",
			"1952", "2005",
		},
		{
			"Lantana camara L.", "Verbenaceae",
			"Naturalised, invasive", "America", "Shrub", "1920", "2003",
		},
		{},
		{
			"Lantana camara L.", "Verbenaceae", "Naturalised",
			"America", "", "s.d.", "2003",
		},
		{
			"Leucaena leucocephala (Lam.) de Wit", "Fabaceae",
			"Naturalised", "America", "Tree", "1931", "2004",
		},
		{
			"Psidium guajava L.", "Myrtaceae", "Naturalized",
			"America", "Tree", "1896", "2005",
		},
		{
			"Senna spectabilis (DC.) H.S.Irwin & Barneby", "Fabaceae",
			"Naturalised", "America", "Tree", "1937", "s.d.",
		},
		{
			"Tithonia diversifolia (Hemsl.) A.Gray", "Asteraceae",
			"Naturalised, invasive", "America", "Shrub", "s.d.", "1990",
		},
	}
}

func writeWorkbook(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}
