// Package iosqlite writes the transformed tables into a single SQLite
// archive, so the result can travel as one file and be queried without
// a CSV parser.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gnuuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// Write creates a fresh SQLite archive at path holding every table plus
// a metadata table describing the dataset. An existing file at path is
// replaced. All inserts run inside one transaction.
func Write(
	ctx context.Context,
	path string,
	ds *config.DatasetConfig,
	tables []dwc.Table,
) error {
	// Start from a clean file, never append to a stale archive.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return CreateError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return CreateError(path, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return CreateError(path, err)
	}

	if err := createSchema(ctx, db, tables); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return CreateError(path, err)
	}
	defer tx.Rollback()

	for _, t := range tables {
		if err := insertRows(ctx, tx, t); err != nil {
			return err
		}
	}

	if err := writeMetadata(ctx, tx, ds, tables); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return CreateError(path, err)
	}

	slog.Info("Wrote SQLite archive", "file", path)
	return nil
}

// createSchema creates one table per dwc.Table with TEXT columns, and
// an index on taxonID for every table except the taxon core.
func createSchema(ctx context.Context, db *sql.DB, tables []dwc.Table) error {
	for _, t := range tables {
		cols := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cols[i] = fmt.Sprintf("%q TEXT", c)
		}
		query := fmt.Sprintf(
			"CREATE TABLE %q (%s)",
			t.Name, strings.Join(cols, ", "),
		)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return SchemaError(t.Name, err)
		}

		if t.Name == dwc.TableTaxon {
			continue
		}
		query = fmt.Sprintf(
			"CREATE INDEX %q ON %q (%q)",
			"idx_"+t.Name+"_taxon_id", t.Name, "taxonID",
		)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return SchemaError(t.Name, err)
		}
	}
	return nil
}

// insertRows loads one table's rows with a prepared statement.
func insertRows(ctx context.Context, tx *sql.Tx, t dwc.Table) error {
	query := fmt.Sprintf(
		"INSERT INTO %q VALUES (%s)",
		t.Name, placeholders(len(t.Columns)),
	)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return InsertError(t.Name, err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return InsertError(t.Name, err)
		}
	}
	return nil
}

// writeMetadata records dataset identity and counts. The guid falls
// back to a UUID v5 derived from the dataset title, the same derivation
// GlobalNames uses for name identifiers.
func writeMetadata(
	ctx context.Context,
	tx *sql.Tx,
	ds *config.DatasetConfig,
	tables []dwc.Table,
) error {
	query := `
CREATE TABLE "metadata" (
  "guid" TEXT,
  "short_name" TEXT,
  "title" TEXT,
  "license" TEXT,
  "rights_holder" TEXT,
  "record_count" INTEGER,
  "taxon_count" INTEGER,
  "exported_at" TEXT
)`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return MetadataError(err)
	}

	guid := ds.GUID
	if guid == "" {
		guid = gnuuid.New(ds.Title).String()
	}

	var recordCount, taxonCount int
	for _, t := range tables {
		recordCount += len(t.Rows)
		if t.Name == dwc.TableTaxon {
			taxonCount = len(t.Rows)
		}
	}

	query = `
INSERT INTO "metadata" (
  "guid", "short_name", "title", "license", "rights_holder",
  "record_count", "taxon_count", "exported_at"
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, query,
		guid,
		ds.ShortName,
		ds.Title,
		ds.License,
		ds.RightsHolder,
		recordCount,
		taxonCount,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return MetadataError(err)
	}
	return nil
}

// placeholders creates a comma-separated string of '?' placeholders.
func placeholders(n int) string {
	res := make([]string, n)
	for i := range res {
		res[i] = "?"
	}
	return strings.Join(res, ", ")
}
