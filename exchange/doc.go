// Package exchange holds the unit-cell exchange template table: one record per
// exchange class, relating a local sublattice site to a remote sublattice site
// in a neighbouring unit cell.
//
// Input formats:
//
//   - Plain text, six whitespace-separated integers per row:
//
//     class local remote dx dy dz
//
//     Blank lines and anything after '#' are ignored.
//
//   - YAML:
//
//     templates:
//     - {class: 0, local: 0, remote: 1, offset: [0, 0, 0]}
//
// Example (kagome lattice, one exchange class, three sublattices):
//
//	0 0 1  0  0  0
//	0 0 2  0  0  0
//	0 1 2  0  0  0
//	0 0 1 -1  0  0
//	0 1 2  1 -1  0
//	0 0 2  0 -1  0
//
// Errors:
//
//   - ErrSyntax: a row is not six integers.
//   - ErrEmptyTable: no templates were supplied.
//   - ErrMalformedTemplate: negative sublattice index or exchange class.
package exchange
