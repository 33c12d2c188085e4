// Package iotransform implements the Transformer interface for the
// checklist to Darwin Core conversion. This is an impure I/O package
// that reads the source workbook and writes CSV files and the optional
// SQLite archive; the mapping itself stays in the pure dwc package.
package iotransform

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gndwc/internal/iocsv"
	"github.com/gnames/gndwc/internal/iosqlite"
	"github.com/gnames/gndwc/internal/ioxlsx"
	"github.com/gnames/gndwc/pkg/checklist"
	"github.com/gnames/gndwc/pkg/config"
	"github.com/gnames/gndwc/pkg/dwc"
	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"
)

// transformer implements the Transformer interface.
type transformer struct {
	cfg *config.Config
}

// New creates a new Transformer.
func New(cfg *config.Config) gndwc.Transformer {
	return &transformer{cfg: cfg}
}

// Transform runs the whole conversion: load the checklist, assign
// taxon identifiers, map to the four Darwin Core tables, and write the
// output files. Identical input produces byte-identical output.
func (t *transformer) Transform(ctx context.Context) error {
	input := t.cfg.Transform.Input
	if input == "" {
		return NoInputError()
	}
	outDir := t.cfg.Transform.OutputDir

	start := time.Now()
	slog.Info("Starting checklist transformation",
		"input", input, "outputDir", outDir)

	gn.Info("(1/4) Loading checklist <em>%s</em>...",
		filepath.Base(input))
	recs, sheet, err := ioxlsx.Load(input, t.cfg.Transform.Sheet)
	if err != nil {
		return err
	}
	gn.Message("<em>Loaded %s rows from sheet %s</em>",
		humanize.Comma(int64(len(recs))), sheet.Name)

	gn.Info("(2/4) Assigning taxon identifiers...")
	emptyNames := checklist.AssignTaxonIDs(
		recs, t.cfg.Dataset.ShortName,
	)
	if emptyNames > 0 {
		slog.Warn(
			"Rows without accepted name share one degenerate identifier",
			"rows", emptyNames,
		)
	}

	if err := checkCancel(ctx); err != nil {
		return err
	}

	gn.Info("(3/4) Mapping to Darwin Core tables...")
	tables, err := t.mapTables(ctx, recs)
	if err != nil {
		return err
	}

	if err := checkCancel(ctx); err != nil {
		return err
	}

	gn.Info("(4/4) Writing CSV files to <em>%s</em>...", outDir)
	if _, err := iocsv.WriteTables(outDir, tables); err != nil {
		return err
	}

	if t.withArchive() {
		path := filepath.Join(
			outDir, t.cfg.Dataset.ShortName+".sqlite",
		)
		gn.Info("Writing SQLite archive <em>%s</em>...",
			filepath.Base(path))
		err := iosqlite.Write(ctx, path, &t.cfg.Dataset, tables)
		if err != nil {
			return err
		}
	}

	duration := time.Since(start)
	slog.Info("Transformation complete",
		"rows", len(recs),
		"taxa", len(tables[0].Rows),
		"distributions", len(tables[1].Rows),
		"descriptions", len(tables[3].Rows),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Transformation complete
Rows: %s, taxa: %s, distributions: %s, descriptions: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(len(recs))),
		humanize.Comma(int64(len(tables[0].Rows))),
		humanize.Comma(int64(len(tables[1].Rows))),
		humanize.Comma(int64(len(tables[3].Rows))),
		gnfmt.TimeString(duration.Seconds()),
	)
	return nil
}

// mapTables runs the four mappers concurrently. They share only the
// read-only records and each fills its own slot, so scheduling cannot
// change the result. Slots: 0 taxon, 1 distribution, 2 speciesprofile,
// 3 description.
func (t *transformer) mapTables(
	ctx context.Context,
	recs []checklist.Record,
) ([]dwc.Table, error) {
	ds := &t.cfg.Dataset
	tables := make([]dwc.Table, 4)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		taxa := dwc.Taxa(ds, recs)
		tables[0] = dwc.TaxonTable(taxa)
		slog.Info("Mapped taxon core", "rows", len(taxa))
		return nil
	})

	g.Go(func() error {
		dists, unmapped := dwc.Distributions(ds, recs)
		for _, status := range unmapped {
			slog.Warn("No degree of establishment for status",
				"status", status)
		}
		tables[1] = dwc.DistributionTable(dists)
		slog.Info("Mapped distribution extension", "rows", len(dists))
		return nil
	})

	g.Go(func() error {
		profiles := dwc.SpeciesProfiles(recs)
		tables[2] = dwc.SpeciesProfileTable(profiles)
		slog.Info("Mapped species profile extension",
			"rows", len(profiles))
		return nil
	})

	g.Go(func() error {
		descs := dwc.Descriptions(ds, recs)
		tables[3] = dwc.DescriptionTable(descs)
		slog.Info("Mapped description extension", "rows", len(descs))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func (t *transformer) withArchive() bool {
	wa := t.cfg.Transform.WithArchive
	return wa != nil && *wa
}

func checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return CanceledError(ctx.Err())
	default:
		return nil
	}
}
