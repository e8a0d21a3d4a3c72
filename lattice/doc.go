// Package lattice expands a unit-cell exchange template table into the full
// bond list of a periodic supercell.
//
// What:
//
//   - Expand walks every unit cell (a, then b, then c) and every template in
//     table order, folding the remote cell back into the supercell with floor
//     modulo. It yields exactly Nx·Ny·Nz·T raw candidates, each tagged with its
//     source cell, template position and per-axis wrap count.
//   - Resolve drops self-bonds (both endpoints fold onto one site) and counts
//     them. Every other candidate passes through untouched, including periodic
//     images that alias an earlier bond on a small supercell; those are counted
//     but kept, since each is a distinct coupling of the periodic lattice.
//   - Build runs validation, Expand and Resolve in one call.
//   - Coordination and Components give quick topology checks on the result.
//
// Why:
//
//   - HTSE solvers take a flat "class siteA siteB" table for a finite
//     periodic cluster. Writing it by hand is error-prone once offsets are
//     negative or the cluster is only one or two cells wide.
//
// Determinism:
//
//   - Output order is generation order minus rejected self-bonds. Two runs on
//     the same input produce identical bonds and an identical Digest.
//
// Complexity:
//
//   - Expand, Resolve, Build: O(Nx·Ny·Nz·T) time and memory.
//   - Coordination, Components: O(sites + bonds).
package lattice
