// Package iocsv serializes Darwin Core tables to CSV files.
package iocsv

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gndwc/pkg/dwc"
)

// WriteTables writes every table to `<name>.csv` inside dir, creating
// the directory when needed. Each file goes to a temporary sibling
// first and is renamed into place, so readers never observe a partial
// file. Returns the paths of the written files in table order.
func WriteTables(dir string, tables []dwc.Table) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, DirError(dir, err)
	}

	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path, err := writeTable(dir, t)
		if err != nil {
			return nil, err
		}
		slog.Info("Wrote table",
			"file", path, "rows", len(t.Rows))
		paths = append(paths, path)
	}
	return paths, nil
}

func writeTable(dir string, t dwc.Table) (string, error) {
	final := filepath.Join(dir, t.Name+".csv")
	tmp := final + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return "", FileError(tmp, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", FileError(tmp, err)
	}
	// WriteAll flushes and reports any buffered write failure.
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", FileError(tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", FileError(tmp, err)
	}

	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", RenameError(final, err)
	}
	return final, nil
}
