// Package emit renders a resolved bond list in the formats HTSE solvers and
// their tooling read.
//
// Formats:
//
//   - Plain: one row "class a b" per bond, 0-based site indices, in the order
//     received. This is the minimal lattice-definition table.
//   - HTSE: the full input file of the HTSE10 code: a commented header with
//     site, bond and per-cell site counts, the central-cell site list, one row
//     "n a b jK" per bond and an end-of-file marker.
//   - CBOR: a deterministic binary document with the same content, for
//     scripts that post-process large clusters.
//
// WriteFile writes through a temporary file and renames it into place, so a
// failed run never leaves a partial table behind. Paths ending in ".zst" are
// zstd-compressed.
package emit
