// compare_tables compares Darwin Core tables between a reference
// archive and a gndwc output directory. This is a temporary tool for
// validating the conversion against the previously published archive.
//
// Usage:
//
//	go run tools/compare_tables.go --reference /path/to/published --output /path/to/gndwc-output
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// tableNames lists the compared tables; the taxon core goes first.
var tableNames = []string{
	"taxon", "distribution", "description", "speciesprofile",
}

type ComparisonResult struct {
	RefRows          map[string]int
	OutRows          map[string]int
	HeadersMatch     map[string]bool
	MissingIDs       []string
	ExtraIDs         []string
	TaxonRecordDiffs int
	RefDegreeCounts  map[string]int
	OutDegreeCounts  map[string]int
}

type table struct {
	header []string
	rows   [][]string
}

func main() {
	reference := flag.String("reference", "",
		"Directory with the reference Darwin Core tables")
	output := flag.String("output", "",
		"Directory with the gndwc output tables")
	sampleSize := flag.Int("sample-size", 100,
		"Number of shared taxon records to compare field by field")

	flag.Parse()

	if *reference == "" || *output == "" {
		fmt.Println("Error: --reference and --output are required")
		flag.Usage()
		os.Exit(1)
	}

	refTables, err := readTables(*reference)
	if err != nil {
		log.Fatalf("Failed to read reference tables: %v", err)
	}
	outTables, err := readTables(*output)
	if err != nil {
		log.Fatalf("Failed to read output tables: %v", err)
	}

	fmt.Printf("Comparing %s against %s\n\n", *output, *reference)

	result := &ComparisonResult{
		RefRows:      make(map[string]int),
		OutRows:      make(map[string]int),
		HeadersMatch: make(map[string]bool),
	}

	// 1. Compare row counts
	fmt.Println("1. Row Counts")
	fmt.Println("-------------")
	compareCounts(refTables, outTables, result)

	// 2. Compare headers
	fmt.Println("\n2. Table Headers")
	fmt.Println("----------------")
	compareHeaders(refTables, outTables, result)

	// 3. Compare taxon identifiers
	fmt.Println("\n3. Taxon Identifiers")
	fmt.Println("--------------------")
	compareIdentifiers(refTables, outTables, result)

	// 4. Compare sample taxon records
	fmt.Println("\n4. Sample Taxon Records")
	fmt.Println("-----------------------")
	if err := compareTaxonRecords(refTables, outTables, *sampleSize,
		result); err != nil {
		log.Fatalf("Failed to compare taxon records: %v", err)
	}

	// 5. Compare degree of establishment distribution
	fmt.Println("\n5. Degree of Establishment Distribution")
	fmt.Println("---------------------------------------")
	if err := compareDegrees(refTables, outTables, result); err != nil {
		log.Fatalf("Failed to compare establishment degrees: %v", err)
	}

	// 6. Summary
	fmt.Println("\n6. Summary")
	fmt.Println("----------")
	printSummary(result)
}

func readTables(dir string) (map[string]table, error) {
	res := make(map[string]table, len(tableNames))
	for _, name := range tableNames {
		path := filepath.Join(dir, name+".csv")
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("%s has no header row", path)
		}

		res[name] = table{header: records[0], rows: records[1:]}
	}
	return res, nil
}

func compareCounts(
	ref, out map[string]table,
	result *ComparisonResult,
) {
	for _, name := range tableNames {
		result.RefRows[name] = len(ref[name].rows)
		result.OutRows[name] = len(out[name].rows)
		fmt.Printf("  %-15s %s\n", name+":",
			compareInts(result.RefRows[name], result.OutRows[name]))
	}
}

func compareHeaders(
	ref, out map[string]table,
	result *ComparisonResult,
) {
	for _, name := range tableNames {
		match := equalStrings(ref[name].header, out[name].header)
		result.HeadersMatch[name] = match
		if match {
			fmt.Printf("  ✓ %s\n", name)
		} else {
			fmt.Printf("  ✗ %s reference=%v output=%v\n",
				name, ref[name].header, out[name].header)
		}
	}
}

func compareIdentifiers(
	ref, out map[string]table,
	result *ComparisonResult,
) {
	refIDs, err := taxonIDSet(ref["taxon"])
	if err != nil {
		log.Fatalf("Failed to index reference taxon table: %v", err)
	}
	outIDs, err := taxonIDSet(out["taxon"])
	if err != nil {
		log.Fatalf("Failed to index output taxon table: %v", err)
	}

	for id := range refIDs {
		if _, ok := outIDs[id]; !ok {
			result.MissingIDs = append(result.MissingIDs, id)
		}
	}
	for id := range outIDs {
		if _, ok := refIDs[id]; !ok {
			result.ExtraIDs = append(result.ExtraIDs, id)
		}
	}
	sort.Strings(result.MissingIDs)
	sort.Strings(result.ExtraIDs)

	fmt.Printf("  Reference IDs: %d, output IDs: %d\n",
		len(refIDs), len(outIDs))
	printIDList("Missing from output", result.MissingIDs)
	printIDList("Absent from reference", result.ExtraIDs)
}

func printIDList(label string, ids []string) {
	if len(ids) == 0 {
		fmt.Printf("  ✓ %s: none\n", label)
		return
	}
	fmt.Printf("  ✗ %s: %d\n", label, len(ids))
	for i, id := range ids {
		if i == 5 {
			fmt.Printf("    ... and %d more\n", len(ids)-5)
			break
		}
		fmt.Printf("    - %s\n", id)
	}
}

func compareTaxonRecords(
	ref, out map[string]table,
	sampleSize int,
	result *ComparisonResult,
) error {
	refByID, err := rowsByTaxonID(ref["taxon"])
	if err != nil {
		return err
	}
	outByID, err := rowsByTaxonID(out["taxon"])
	if err != nil {
		return err
	}

	var shared []string
	for id := range refByID {
		if _, ok := outByID[id]; ok {
			shared = append(shared, id)
		}
	}
	sort.Strings(shared)
	if len(shared) > sampleSize {
		shared = shared[:sampleSize]
	}

	for _, id := range shared {
		if !equalStrings(refByID[id], outByID[id]) {
			result.TaxonRecordDiffs++
			fmt.Printf("  ✗ %s\n    reference=%v\n    output=%v\n",
				id, refByID[id], outByID[id])
		}
	}
	if result.TaxonRecordDiffs == 0 {
		fmt.Printf("  ✓ %d shared records are identical\n", len(shared))
	}
	return nil
}

func compareDegrees(
	ref, out map[string]table,
	result *ComparisonResult,
) error {
	var err error
	result.RefDegreeCounts, err = degreeCounts(ref["distribution"])
	if err != nil {
		return fmt.Errorf("reference distribution: %w", err)
	}
	result.OutDegreeCounts, err = degreeCounts(out["distribution"])
	if err != nil {
		return fmt.Errorf("output distribution: %w", err)
	}

	degrees := make(map[string]struct{})
	for d := range result.RefDegreeCounts {
		degrees[d] = struct{}{}
	}
	for d := range result.OutDegreeCounts {
		degrees[d] = struct{}{}
	}
	var sorted []string
	for d := range degrees {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)

	for _, d := range sorted {
		label := d
		if label == "" {
			label = "(empty)"
		}
		fmt.Printf("  %-15s %s\n", label+":",
			compareInts(result.RefDegreeCounts[d],
				result.OutDegreeCounts[d]))
	}
	return nil
}

func degreeCounts(t table) (map[string]int, error) {
	idx, err := columnIndex(t.header, "degreeOfEstablishment")
	if err != nil {
		return nil, err
	}
	res := make(map[string]int)
	for _, row := range t.rows {
		if idx >= len(row) {
			continue
		}
		res[row[idx]]++
	}
	return res, nil
}

func taxonIDSet(t table) (map[string]struct{}, error) {
	idx, err := columnIndex(t.header, "taxonID")
	if err != nil {
		return nil, err
	}
	res := make(map[string]struct{}, len(t.rows))
	for _, row := range t.rows {
		if idx < len(row) {
			res[row[idx]] = struct{}{}
		}
	}
	return res, nil
}

func rowsByTaxonID(t table) (map[string][]string, error) {
	idx, err := columnIndex(t.header, "taxonID")
	if err != nil {
		return nil, err
	}
	res := make(map[string][]string, len(t.rows))
	for _, row := range t.rows {
		if idx < len(row) {
			res[row[idx]] = row
		}
	}
	return res, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no %q column in header %v", name, header)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func compareInts(a, b int) string {
	if a == b {
		return fmt.Sprintf("✓ %d", a)
	}
	return fmt.Sprintf("✗ reference=%d output=%d (diff: %d)", a, b, b-a)
}

func printSummary(result *ComparisonResult) {
	countsMatch := true
	for _, name := range tableNames {
		if result.RefRows[name] != result.OutRows[name] {
			countsMatch = false
		}
	}
	headersMatch := true
	for _, name := range tableNames {
		if !result.HeadersMatch[name] {
			headersMatch = false
		}
	}
	degreesMatch := equalCounts(result.RefDegreeCounts,
		result.OutDegreeCounts)

	allMatch := countsMatch && headersMatch &&
		len(result.MissingIDs) == 0 && len(result.ExtraIDs) == 0 &&
		result.TaxonRecordDiffs == 0 && degreesMatch

	if allMatch {
		fmt.Println("  ✓ All comparisons match!")
		fmt.Println("  The archives are identical.")
		return
	}

	fmt.Println("  ✗ Differences found:")
	if !countsMatch {
		fmt.Printf("    - Row counts differ\n")
	}
	if !headersMatch {
		fmt.Printf("    - Table headers differ\n")
	}
	if len(result.MissingIDs) > 0 {
		fmt.Printf("    - Output misses %d taxa\n", len(result.MissingIDs))
	}
	if len(result.ExtraIDs) > 0 {
		fmt.Printf("    - Output adds %d taxa\n", len(result.ExtraIDs))
	}
	if result.TaxonRecordDiffs > 0 {
		fmt.Printf("    - %d taxon records differ\n",
			result.TaxonRecordDiffs)
	}
	if !degreesMatch {
		fmt.Printf("    - Establishment degree counts differ\n")
	}
}

func equalCounts(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
