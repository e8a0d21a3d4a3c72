package lattice

import (
	"fmt"

	"github.com/katalvlaran/htsegen/supercell"
)

// Method tags for error context.
const (
	methodExpand = "Expand"
	methodBuild  = "Build"
)

// Bond is one physical coupling in the expanded lattice: exchange class and
// the global indices of its two sites.
type Bond struct {
	Class int
	A, B  int
}

// IsSelf reports whether both endpoints are the same site.
func (b Bond) IsSelf() bool {
	return b.A == b.B
}

// String renders b as the solver row "class a b".
func (b Bond) String() string {
	return fmt.Sprintf("%d %d %d", b.Class, b.A, b.B)
}

// pairKey identifies a bond by class and unordered endpoint pair.
type pairKey struct {
	class, lo, hi int
}

func (b Bond) key() pairKey {
	lo, hi := b.A, b.B
	if lo > hi {
		lo, hi = hi, lo
	}

	return pairKey{class: b.Class, lo: lo, hi: hi}
}

// Candidate is a raw bond produced by Expand, before degeneracy handling.
type Candidate struct {
	Bond
	// Cell is the local site's unit cell.
	Cell supercell.Vec
	// Template is the position of the source template in the table.
	Template int
	// Wraps counts the periods folded on each axis to bring the remote cell
	// back into the supercell.
	Wraps supercell.Vec
}

// Report summarises what Resolve saw.
type Report struct {
	// Candidates is the number of raw candidates, Nx·Ny·Nz·T.
	Candidates int
	// SelfBonds is the number of candidates rejected because both endpoints
	// folded onto one site.
	SelfBonds int
	// Aliased is the number of kept bonds that repeat the class and unordered
	// site pair of an earlier kept bond.
	Aliased int
	// PerClass counts kept bonds per exchange class.
	PerClass map[int]int
}

// Bonds returns the number of bonds that survived resolution.
func (r Report) Bonds() int {
	return r.Candidates - r.SelfBonds
}

// String renders the operator diagnostic, e.g.
// "24 candidates, 24 bonds, 0 self-bonds excluded, 0 aliased".
func (r Report) String() string {
	return fmt.Sprintf("%d candidates, %d bonds, %d self-bonds excluded, %d aliased",
		r.Candidates, r.Bonds(), r.SelfBonds, r.Aliased)
}
