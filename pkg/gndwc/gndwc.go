// Package gndwc defines the interfaces of the checklist transformation
// pipeline. Implementations live in internal packages; constructors
// receive their configuration and return these interfaces.
package gndwc

import (
	"context"
)

// Transformer runs one full checklist-to-Darwin-Core transformation:
// load the spreadsheet, derive taxon identifiers, map the star-schema
// tables and write them out.
type Transformer interface {
	// Transform executes the pipeline once. Table writes are atomic, so
	// a failed run never leaves a partially-written table behind.
	Transform(ctx context.Context) error
}

// Checker reports on the quality of a checklist without writing any
// output tables.
type Checker interface {
	// Check loads the spreadsheet and prints a data-quality report:
	// duplicated, empty and unparseable names, statuses outside the
	// controlled vocabulary, and descriptor coverage.
	Check(ctx context.Context) error
}
