package iocsv

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func testTables() []dwc.Table {
	return []dwc.Table{
		{
			Name:    "taxon",
			Columns: []string{"taxonID", "scientificName", "family"},
			Rows: [][]string{
				{"demo:taxon:1", "Ageratum conyzoides L.", "Asteraceae"},
				{"demo:taxon:2", "Lantana camara L.", "Verbenaceae"},
			},
		},
		{
			Name:    "distribution",
			Columns: []string{"taxonID", "establishmentMeans"},
			Rows: [][]string{
				{"demo:taxon:1", "introduced"},
			},
		},
	}
}

func TestWriteTables_WritesFiles(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteTables(dir, testTables())
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.Equal(t, filepath.Join(dir, "taxon.csv"), paths[0])
	assert.Equal(t, filepath.Join(dir, "distribution.csv"), paths[1])

	rows := readCSV(t, paths[0])
	require.Len(t, rows, 3)
	assert.Equal(t,
		[]string{"taxonID", "scientificName", "family"},
		rows[0],
	)
	assert.Equal(t,
		[]string{"demo:taxon:1", "Ageratum conyzoides L.", "Asteraceae"},
		rows[1],
	)

	rows = readCSV(t, paths[1])
	require.Len(t, rows, 2)
}

func TestWriteTables_NoTemporaryLeftovers(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteTables(dir, testTables())
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp",
			"temporary files should be renamed away")
	}
}

func TestWriteTables_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "processed")

	paths, err := WriteTables(dir, testTables())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Len(t, paths, 2)
}

func TestWriteTables_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "taxon.csv")
	require.NoError(t,
		os.WriteFile(stale, []byte("old content\n"), 0644))

	_, err := WriteTables(dir, testTables())
	require.NoError(t, err)

	rows := readCSV(t, stale)
	require.Len(t, rows, 3)
	assert.Equal(t, "taxonID", rows[0][0])
}

// A table without rows still produces a file with its header, so the
// output set stays schema-complete.
func TestWriteTables_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	tables := []dwc.Table{
		{
			Name: "speciesprofile",
			Columns: []string{
				"taxonID", "isMarine", "isFreshwater", "isTerrestrial",
			},
		},
	}

	paths, err := WriteTables(dir, tables)
	require.NoError(t, err)

	rows := readCSV(t, paths[0])
	require.Len(t, rows, 1)
	assert.Equal(t,
		[]string{"taxonID", "isMarine", "isFreshwater", "isTerrestrial"},
		rows[0],
	)
}

// Cells with commas and empty strings must survive a round trip.
func TestWriteTables_QuotingAndNulls(t *testing.T) {
	dir := t.TempDir()
	tables := []dwc.Table{
		{
			Name:    "distribution",
			Columns: []string{"taxonID", "establishmentMeans", "eventDate"},
			Rows: [][]string{
				{"demo:taxon:1", "Naturalised, invasive", ""},
			},
		},
	}

	paths, err := WriteTables(dir, tables)
	require.NoError(t, err)

	rows := readCSV(t, paths[0])
	require.Len(t, rows, 2)
	assert.Equal(t, "Naturalised, invasive", rows[1][1])
	assert.Equal(t, "", rows[1][2])
}

func TestWriteTables_DirError(t *testing.T) {
	// A file where the directory should go makes MkdirAll fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "out")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := WriteTables(blocker, testTables())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.WriteDirError, gnErr.Code)
}
