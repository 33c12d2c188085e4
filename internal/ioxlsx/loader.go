// Package ioxlsx reads the source checklist workbook into memory.
//
// The expected layout follows the published spreadsheet: row 1 carries a
// document title and is discarded, row 2 holds column headers, rows 3
// and below are data. Cell values are kept verbatim; downstream mappers
// decide what to trim or recode.
package ioxlsx

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gndwc/pkg/checklist"
	"github.com/xuri/excelize/v2"
)

// Sheet describes the worksheet that was loaded.
type Sheet struct {
	// Name is the resolved worksheet name.
	Name string

	// Columns holds the normalized header names in source order.
	Columns []string

	// Skipped counts rows dropped because every cell was empty.
	Skipped int
}

// Load reads the checklist worksheet at path. An empty sheet name
// selects the first worksheet of the workbook. The returned records
// preserve source order; rows where every cell is empty or
// whitespace-only are dropped.
func Load(path, sheet string) ([]checklist.Record, *Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, FileNotFoundError(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, FileOpenError(path, err)
	}
	defer f.Close()

	name := sheet
	if name == "" {
		name = f.GetSheetName(0)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, nil, SheetNotFoundError(path, name, err)
	}

	// Row 1 is the document title, row 2 holds the headers.
	if len(rows) < 2 {
		return nil, nil, EmptySheetError(path, name)
	}

	headers := checklist.NormalizeHeaders(rows[1])
	warnMissingColumns(name, headers)

	recs := make([]checklist.Record, 0, len(rows)-2)
	var skipped int
	for _, row := range rows[2:] {
		if isBlank(row) {
			skipped++
			continue
		}
		cells := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				cells[h] = row[i]
			}
		}
		recs = append(recs, checklist.FromRow(cells))
	}

	res := &Sheet{Name: name, Columns: headers, Skipped: skipped}
	slog.Info("Loaded checklist",
		"file", path, "sheet", name,
		"rows", len(recs), "skippedRows", skipped,
	)
	return recs, res, nil
}

// isBlank reports whether every cell of a row is empty or
// whitespace-only.
func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// warnMissingColumns logs the checklist columns the sheet does not
// provide. Missing columns leave their fields empty downstream, so a
// load still succeeds.
func warnMissingColumns(sheet string, headers []string) {
	have := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		have[h] = struct{}{}
	}
	for _, col := range checklist.Columns() {
		if _, ok := have[col]; !ok {
			slog.Warn("Column is missing from the sheet",
				"sheet", sheet, "column", col)
		}
	}
}
