// Package htsegen turns a unit-cell exchange table into the periodic bond list
// read by high-temperature series expansion (HTSE) solvers.
//
// What is in the module?
//
//	exchange/  — exchange templates: six-column text and YAML loaders, validation
//	supercell/ — Nx×Ny×Nz periodic box: site ↔ global index, floor-modulo wrapping
//	lattice/   — expansion, self-bond rejection, diagnostics, topology checks
//	emit/      — plain, HTSE10 and CBOR writers, zstd output
//	config/    — YAML run settings
//	cmd/htsegen — the command-line tool
//
// Quick example (kagome, 2×2×1 cells → 12 sites, 24 bonds):
//
//	tb, _ := exchange.Load("kagome.txt")
//	res, _ := lattice.Build(tb, supercell.Extents{X: 2, Y: 2, Z: 1})
//	_ = emit.Write(os.Stdout, emit.FormatPlain, emit.Document{Result: res})
//
// Site numbering is row-major over (a, b, c, sublattice), sublattice fastest.
// A coupling that folds onto its own site in a too-small supercell is dropped
// and counted; periodic images that merely repeat a site pair are kept.
package htsegen
