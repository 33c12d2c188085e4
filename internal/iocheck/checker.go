// Package iocheck implements the Checker interface for checklist
// quality reports. This is an impure I/O package that reads the source
// workbook, profiles its fields, runs every distinct accepted name
// through gnparser, and prints what the transformation would have to
// work with. Nothing is written unless a report file is requested.
package iocheck

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/ioxlsx"
	"github.com/gnames/gndwc/pkg/checklist"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/gnames/gndwc/pkg/parserpool"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnparser/ent/parsed"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// checker implements the Checker interface.
type checker struct {
	cfg *config.Config
}

// New creates a new Checker.
func New(cfg *config.Config) gndwc.Checker {
	return &checker{cfg: cfg}
}

// Check loads the checklist and prints a quality report: accepted name
// duplication, statuses outside the degreeOfEstablishment vocabulary,
// descriptor coverage, and gnparser verification of every distinct
// name. With a report path configured the same numbers go to a YAML
// file.
func (c *checker) Check(ctx context.Context) error {
	input := c.cfg.Transform.Input
	if input == "" {
		return NoInputError()
	}

	start := time.Now()
	slog.Info("Starting checklist check", "input", input)

	gn.Info("(1/3) Loading checklist <em>%s</em>...",
		filepath.Base(input))
	recs, sheet, err := ioxlsx.Load(input, c.cfg.Transform.Sheet)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		return EmptyChecklistError(input)
	}
	gn.Message("<em>Loaded %s rows from sheet %s</em>",
		humanize.Comma(int64(len(recs))), sheet.Name)

	gn.Info("(2/3) Profiling checklist fields...")
	checklist.AssignTaxonIDs(recs, c.cfg.Dataset.ShortName)
	rep := buildReport(recs)
	rep.print()
	slog.Info("Checklist profile",
		"rows", rep.rows,
		"taxa", rep.taxa,
		"duplicates", len(rep.duplicates),
		"unmappedStatuses", len(rep.unmapped),
	)

	gn.Info("(3/3) Verifying <em>%s</em> distinct names...",
		humanize.Comma(int64(len(rep.distinct))))
	ver, err := c.verifyNames(ctx, rep.distinct)
	if err != nil {
		return err
	}
	ver.print()

	if path := c.cfg.Check.Report; path != "" {
		err = writeReport(path, input, sheet.Name, rep, ver)
		if err != nil {
			return err
		}
	}

	duration := time.Since(start)
	slog.Info("Check complete",
		"rows", rep.rows,
		"names", ver.total,
		"unparsed", len(ver.unparsed),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Check complete
Rows: %s, distinct names: %s, unparsed: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(rep.rows)),
		humanize.Comma(int64(ver.total)),
		humanize.Comma(int64(len(ver.unparsed))),
		gnfmt.TimeString(duration.Seconds()),
	)
	return nil
}

// report aggregates the field-level profile of a checklist.
type report struct {
	// rows is the number of data rows after blank-row removal.
	rows int

	// taxa is the number of distinct taxon identifiers, the row count
	// of the taxon core the transformation would emit.
	taxa int

	// distinct holds the distinct non-empty accepted names in
	// first-seen order. Verification parses exactly this list.
	distinct []string

	// duplicates holds the accepted names that appear on more than one
	// row, in first-seen order.
	duplicates []string

	emptyNames    int
	emptyStatuses int

	// unmapped holds the distinct non-empty proposed statuses outside
	// the degreeOfEstablishment vocabulary, in first-seen order.
	unmapped []string

	// nativeRanges and lifeForms count the rows that would contribute
	// a description of the respective type.
	nativeRanges int
	lifeForms    int
}

// buildReport profiles records that already carry taxon identifiers.
func buildReport(recs []checklist.Record) *report {
	res := &report{rows: len(recs)}
	nameCount := make(map[string]int)
	ids := make(map[string]struct{})
	statusSeen := make(map[string]struct{})
	for _, rec := range recs {
		ids[rec.TaxonID] = struct{}{}
		if rec.AcceptedName == "" {
			res.emptyNames++
		} else {
			nameCount[rec.AcceptedName]++
			switch nameCount[rec.AcceptedName] {
			case 1:
				res.distinct = append(res.distinct, rec.AcceptedName)
			case 2:
				res.duplicates = append(res.duplicates, rec.AcceptedName)
			}
		}
		if rec.ProposedStatus == "" {
			res.emptyStatuses++
		} else if _, ok := dwc.DegreeOfEstablishment(rec.ProposedStatus); !ok {
			if _, dup := statusSeen[rec.ProposedStatus]; !dup {
				statusSeen[rec.ProposedStatus] = struct{}{}
				res.unmapped = append(res.unmapped, rec.ProposedStatus)
			}
		}
		if strings.TrimSpace(rec.ContinentOfOrigin) != "" {
			res.nativeRanges++
		}
		if rec.LifeForm != "" {
			res.lifeForms++
		}
	}
	res.taxa = len(ids)
	return res
}

func (r *report) print() {
	gn.Info(
		"Accepted names: <em>%s</em> distinct, %s duplicated, %s empty",
		humanize.Comma(int64(len(r.distinct))),
		humanize.Comma(int64(len(r.duplicates))),
		humanize.Comma(int64(r.emptyNames)),
	)
	gn.Info("The transformation would emit <em>%s</em> taxa",
		humanize.Comma(int64(r.taxa)))
	for _, name := range r.duplicates {
		gn.Warn("Duplicated accepted name: <em>%s</em>", name)
	}
	if r.emptyStatuses > 0 {
		gn.Warn("Rows without a proposed status: <em>%d</em>",
			r.emptyStatuses)
	}
	for _, status := range r.unmapped {
		gn.Warn("Status outside the vocabulary: <em>%s</em>", status)
	}
	gn.Info(
		"Native range given for %s rows, life form for %s rows",
		humanize.Comma(int64(r.nativeRanges)),
		humanize.Comma(int64(r.lifeForms)),
	)
}

// verification aggregates gnparser results over the distinct names.
type verification struct {
	// total is the number of names sent to the parser.
	total int

	// qualities counts names per gnparser parse quality. Quality 0
	// means the name did not parse at all.
	qualities map[int]int

	// unparsed holds the quality-0 names, sorted.
	unparsed []string
}

// verifyNames parses the names concurrently with a pool of gnparser
// workers. Names travel through chIn to the workers and results come
// back on chOut; the receive loop below is the only writer of the
// counters, so they need no locking.
func (c *checker) verifyNames(
	ctx context.Context,
	names []string,
) (*verification, error) {
	jobs := c.cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}
	pool := parserpool.NewPool(
		parserpool.CodeFrom(c.cfg.Dataset.NomenclaturalCode), jobs,
	)
	defer pool.Close()

	res := &verification{
		total:     len(names),
		qualities: make(map[int]int),
	}

	bar := newProgressBar(len(names), "Verifying names: ")
	defer bar.Finish()

	chIn := make(chan string)
	chOut := make(chan parsed.Parsed)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for _, name := range names {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
				chIn <- name
			}
		}
		return nil
	})

	// Workers drain chIn even after cancellation; the producer stops
	// feeding it, so they wind down quickly.
	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for name := range chIn {
				chOut <- pool.Parse(name)
			}
			return nil
		})
	}

	go func() {
		wg.Wait()
		close(chOut)
	}()

	for p := range chOut {
		bar.Increment()
		res.qualities[p.ParseQuality]++
		if p.ParseQuality == 0 {
			res.unparsed = append(res.unparsed, p.Verbatim)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, ParserError(err)
	}

	slices.Sort(res.unparsed)
	return res, nil
}

func (v *verification) print() {
	okCount := v.total - v.qualities[0]
	gn.Message("<em>Parsed %s of %s distinct names</em>",
		humanize.Comma(int64(okCount)),
		humanize.Comma(int64(v.total)),
	)
	for _, q := range slices.Sorted(maps.Keys(v.qualities)) {
		if q == 0 {
			continue
		}
		gn.Info("Parse quality %d: <em>%s</em> names",
			q, humanize.Comma(int64(v.qualities[q])))
	}
	for _, name := range v.unparsed {
		gn.Warn("Cannot parse: <em>%s</em>", name)
	}
}

// reportFile is the YAML shape of the optional report file.
type reportFile struct {
	Input            string         `yaml:"input"`
	Sheet            string         `yaml:"sheet"`
	Rows             int            `yaml:"rows"`
	Taxa             int            `yaml:"taxa"`
	DistinctNames    int            `yaml:"distinct_names"`
	DuplicatedNames  []string       `yaml:"duplicated_names,omitempty"`
	EmptyNames       int            `yaml:"empty_names"`
	EmptyStatuses    int            `yaml:"empty_statuses"`
	UnmappedStatuses []string       `yaml:"unmapped_statuses,omitempty"`
	NativeRangeRows  int            `yaml:"native_range_rows"`
	LifeFormRows     int            `yaml:"life_form_rows"`
	Verification     verifyFileData `yaml:"verification"`
}

type verifyFileData struct {
	Names         int         `yaml:"names"`
	Parsed        int         `yaml:"parsed"`
	Quality       map[int]int `yaml:"quality"`
	UnparsedNames []string    `yaml:"unparsed_names,omitempty"`
}

func writeReport(
	path, input, sheet string,
	rep *report,
	ver *verification,
) error {
	doc := reportFile{
		Input:            input,
		Sheet:            sheet,
		Rows:             rep.rows,
		Taxa:             rep.taxa,
		DistinctNames:    len(rep.distinct),
		DuplicatedNames:  rep.duplicates,
		EmptyNames:       rep.emptyNames,
		EmptyStatuses:    rep.emptyStatuses,
		UnmappedStatuses: rep.unmapped,
		NativeRangeRows:  rep.nativeRanges,
		LifeFormRows:     rep.lifeForms,
		Verification: verifyFileData{
			Names:         ver.total,
			Parsed:        ver.total - ver.qualities[0],
			Quality:       ver.qualities,
			UnparsedNames: ver.unparsed,
		},
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return ReportError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return ReportError(path, err)
	}
	slog.Info("Wrote check report", "file", path)
	gn.Info("Wrote report to <em>%s</em>", path)
	return nil
}
