package supercell

import "fmt"

// New returns a Supercell for the given extents and sublattice count.
// Returns ErrBadExtent if any extent is < 1 and ErrBadSublattices if
// sublattices is < 1.
func New(ext Extents, sublattices int) (*Supercell, error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	if sublattices < 1 {
		return nil, fmt.Errorf("%s: sublattices=%d: %w", methodNew, sublattices, ErrBadSublattices)
	}

	return &Supercell{ext: ext, sublattices: sublattices}, nil
}

// Extents returns the number of cells along each axis.
func (sc *Supercell) Extents() Extents {
	return sc.ext
}

// Sublattices returns the number of sites per unit cell.
func (sc *Supercell) Sublattices() int {
	return sc.sublattices
}

// Cells returns Nx·Ny·Nz.
func (sc *Supercell) Cells() int {
	return sc.ext.Cells()
}

// Sites returns Nx·Ny·Nz·S, one past the largest global index.
func (sc *Supercell) Sites() int {
	return sc.ext.Cells() * sc.sublattices
}

// InBounds reports whether c is a cell coordinate inside the supercell.
func (sc *Supercell) InBounds(c Vec) bool {
	return c.X >= 0 && c.X < sc.ext.X &&
		c.Y >= 0 && c.Y < sc.ext.Y &&
		c.Z >= 0 && c.Z < sc.ext.Z
}

// Index maps a site to its global index. The site must already be wrapped
// into the supercell; out-of-range input is a caller error and yields an
// index that aliases another site.
// Complexity: O(1).
func (sc *Supercell) Index(s Site) int {
	cell := (s.Cell.X*sc.ext.Y+s.Cell.Y)*sc.ext.Z + s.Cell.Z

	return cell*sc.sublattices + s.Sub
}

// Site converts a global index back to (cell, sublattice).
// Complexity: O(1).
func (sc *Supercell) Site(idx int) Site {
	sub := idx % sc.sublattices
	cell := idx / sc.sublattices
	z := cell % sc.ext.Z
	cell /= sc.ext.Z
	y := cell % sc.ext.Y
	x := cell / sc.ext.Y

	return Site{Cell: Vec{X: x, Y: y, Z: z}, Sub: sub}
}

// CellIndex returns the row-major position of a wrapped cell, in [0, Cells()).
func (sc *Supercell) CellIndex(c Vec) int {
	return (c.X*sc.ext.Y+c.Y)*sc.ext.Z + c.Z
}

// Wrap folds an unwrapped cell coordinate into the supercell.
// wraps holds the floor quotient per axis: raw = wrapped + wraps·N.
// Complexity: O(1).
func (sc *Supercell) Wrap(raw Vec) (wrapped, wraps Vec) {
	wrapped = Vec{
		X: FloorMod(raw.X, sc.ext.X),
		Y: FloorMod(raw.Y, sc.ext.Y),
		Z: FloorMod(raw.Z, sc.ext.Z),
	}
	wraps = Vec{
		X: FloorDiv(raw.X, sc.ext.X),
		Y: FloorDiv(raw.Y, sc.ext.Y),
		Z: FloorDiv(raw.Z, sc.ext.Z),
	}

	return wrapped, wraps
}

// FloorMod returns a mod n in [0, n) for n > 0, rounding the quotient toward
// negative infinity: FloorMod(-1, 5) == 4.
func FloorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}

// FloorDiv returns ⌊a/n⌋ for n > 0: FloorDiv(-1, 5) == -1.
func FloorDiv(a, n int) int {
	q := a / n
	if a%n < 0 {
		q--
	}

	return q
}
