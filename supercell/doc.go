// Package supercell maps sites of a periodic Nx×Ny×Nz supercell to dense
// global indices and back.
//
// What:
//
//   - Extents holds the number of unit cells along each lattice direction.
//   - Supercell fixes Extents plus the number of sublattice sites S per cell.
//   - Index/Site form a bijection between (cell, sublattice) and [0, Nx·Ny·Nz·S).
//   - Wrap folds an unwrapped cell coordinate back into the supercell using
//     floor modulo, reporting how many periods were folded on each axis.
//
// Ordering:
//
//	index = ((a·Ny + b)·Nz + c)·S + s
//
// i.e. row-major over (a, b, c, s) with the sublattice index varying fastest.
// The order is stable across runs; downstream solvers only need it to be
// self-consistent.
//
// Wrapping:
//
//	FloorMod(-1, 5) == 4, FloorDiv(-1, 5) == -1
//
// Go's % truncates toward zero, so Wrap never uses it directly on a
// possibly-negative coordinate.
//
// Errors:
//
//   - ErrBadExtent: an extent is < 1.
//   - ErrBadSublattices: the sublattice count is < 1.
//
// Complexity: every operation is O(1).
package supercell
