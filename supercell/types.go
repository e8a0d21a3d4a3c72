package supercell

import "fmt"

// MinExtent is the smallest number of unit cells allowed along an axis.
// A 1-cell axis is valid but makes every offset along it fold onto itself.
const MinExtent = 1

// methodNew tags errors returned by New.
const methodNew = "New"

// Vec is an integer triple: a cell coordinate, a cell offset or a per-axis
// wrap count, depending on context.
type Vec struct {
	X, Y, Z int
}

// Add returns the componentwise sum v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// IsZero reports whether all three components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// String renders v as "(x,y,z)".
func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Extents is the number of unit cells replicated along each lattice direction.
type Extents struct {
	X, Y, Z int
}

// Validate reports ErrBadExtent when any extent is below MinExtent.
func (e Extents) Validate() error {
	if e.X < MinExtent || e.Y < MinExtent || e.Z < MinExtent {
		return fmt.Errorf("%s: extents %dx%dx%d (each must be ≥ %d): %w",
			methodNew, e.X, e.Y, e.Z, MinExtent, ErrBadExtent)
	}

	return nil
}

// Cells returns Nx·Ny·Nz.
func (e Extents) Cells() int {
	return e.X * e.Y * e.Z
}

// String renders e as "NxxNyxNz", the form used in solver file headers.
func (e Extents) String() string {
	return fmt.Sprintf("%dx%dx%d", e.X, e.Y, e.Z)
}

// Site identifies one spin: its unit cell and its sublattice within that cell.
type Site struct {
	Cell Vec
	Sub  int
}

// Supercell is an immutable periodic box of Extents unit cells, each holding
// Sublattices sites.
type Supercell struct {
	ext         Extents
	sublattices int
}
