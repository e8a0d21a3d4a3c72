package lattice

import "errors"

// ErrNilTable indicates Build or Expand received a nil template table.
var ErrNilTable = errors.New("lattice: nil template table")

// ErrSublatticeRange indicates a template references a sublattice outside
// the supercell it is expanded into.
var ErrSublatticeRange = errors.New("lattice: sublattice index out of range")
