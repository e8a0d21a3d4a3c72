package supercell

import "errors"

var (
	// ErrBadExtent indicates a supercell extent below MinExtent.
	ErrBadExtent = errors.New("supercell: extent must be positive")
	// ErrBadSublattices indicates fewer than one site per unit cell.
	ErrBadSublattices = errors.New("supercell: sublattice count must be positive")
)
