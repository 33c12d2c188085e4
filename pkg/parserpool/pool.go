// Package parserpool provides a pool of gnparser instances for concurrent
// verification of checklist names.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool hands out gnparser instances for concurrent parsing. All parsers
// in a pool share one nomenclatural code, fixed at construction.
type Pool interface {
	// Parse parses a scientific name string with a parser from the pool.
	// It is safe for concurrent use and blocks while all parsers are busy.
	Parse(nameString string) parsed.Parsed

	// Close shuts down the pool and releases its parsers.
	// After calling Close, the pool should not be used.
	Close()
}

type poolImpl struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a parser pool with jobsNum workers configured for the
// given nomenclatural code. If jobsNum is 0, it defaults to
// runtime.NumCPU(). Details are enabled so parsed results carry
// authorship data for quality reports.
func NewPool(code nomcode.Code, jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(code),
		gnparser.OptWithDetails(true),
	)
	return &poolImpl{
		ch:       gnparser.NewPool(cfg, poolSize),
		poolSize: poolSize,
	}
}

// CodeFrom maps a configured nomenclatural code name onto the gnlib
// code value. Botanical is the fallback because plant checklists are
// the tool's home domain.
func CodeFrom(s string) nomcode.Code {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ICZN", "ZOOLOGICAL":
		return nomcode.Zoological
	case "ICNP", "BACTERIAL":
		return nomcode.Bacterial
	default:
		return nomcode.Botanical
	}
}

// Parse retrieves a parser from the pool, parses the name, and returns
// the parser to the pool.
func (p *poolImpl) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	result := parser.ParseName(nameString)
	p.ch <- parser
	return result
}

// Close closes the pool channel and drains any remaining parsers.
func (p *poolImpl) Close() {
	if p.ch != nil {
		close(p.ch)
		for range p.ch {
		}
	}
}
