package lattice

import (
	"fmt"

	"github.com/katalvlaran/htsegen/exchange"
	"github.com/katalvlaran/htsegen/supercell"
)

// Result is a fully resolved supercell.
type Result struct {
	// Supercell is the index map the bonds refer to.
	Supercell *supercell.Supercell
	// Table is the template table that was expanded.
	Table *exchange.Table
	// Bonds is the final bond list in generation order.
	Bonds []Bond
	// Rejected holds the self-bond candidates that were dropped.
	Rejected []Candidate
	// Report carries the diagnostic counters.
	Report Report
}

// Build validates the inputs, then expands and resolves the lattice.
// The sublattice count is inferred from the table. Validation errors
// (exchange.ErrEmptyTable, exchange.ErrMalformedTemplate,
// supercell.ErrBadExtent) are returned before any bond is generated.
func Build(tb *exchange.Table, ext supercell.Extents, opts ...Option) (*Result, error) {
	if tb == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilTable)
	}
	if err := tb.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	sc, err := supercell.New(ext, tb.Sublattices())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	cands, err := Expand(tb, sc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	bonds, rejected, rep := Resolve(cands, opts...)

	return &Result{
		Supercell: sc,
		Table:     tb,
		Bonds:     bonds,
		Rejected:  rejected,
		Report:    rep,
	}, nil
}
