package lattice

import (
	"fmt"

	"github.com/katalvlaran/htsegen/exchange"
	"github.com/katalvlaran/htsegen/supercell"
)

// Expand generates one raw candidate per (unit cell, template) pair.
//
// Behavior:
//  1. Check every template's sublattices fit in sc (ErrSublatticeRange).
//  2. For each cell (a, b, c) in row-major order and each template t:
//     • local  = (cell, t.Local)
//     • raw    = cell + t.Offset, possibly outside the supercell
//     • remote = (Wrap(raw), t.Remote), floor modulo per axis
//     • emit Candidate{t.Class, Index(local), Index(remote)} with wrap counts.
//
// The result has exactly sc.Cells()·T entries, where T counts the templates
// accepted by WithClassFilter (all of them by default).
//
// Complexity: O(Nx·Ny·Nz·T) time and memory.
func Expand(tb *exchange.Table, sc *supercell.Supercell, opts ...Option) ([]Candidate, error) {
	if tb == nil {
		return nil, fmt.Errorf("%s: %w", methodExpand, ErrNilTable)
	}
	cfg := newConfig(opts...)

	// 1) Select templates and range-check their sublattices up front.
	active := make([]int, 0, len(tb.Templates))
	for i, t := range tb.Templates {
		if t.Local < 0 || t.Local >= sc.Sublattices() || t.Remote < 0 || t.Remote >= sc.Sublattices() {
			return nil, fmt.Errorf("%s: template %d (%s) with %d sublattices: %w",
				methodExpand, i, t, sc.Sublattices(), ErrSublatticeRange)
		}
		if cfg.keep(t.Class) {
			active = append(active, i)
		}
	}

	// 2) Walk cells in canonical order, templates in table order.
	ext := sc.Extents()
	out := make([]Candidate, 0, sc.Cells()*len(active))
	for a := 0; a < ext.X; a++ {
		for b := 0; b < ext.Y; b++ {
			for c := 0; c < ext.Z; c++ {
				cell := supercell.Vec{X: a, Y: b, Z: c}
				for _, ti := range active {
					t := tb.Templates[ti]
					remoteCell, wraps := sc.Wrap(cell.Add(t.Offset))
					out = append(out, Candidate{
						Bond: Bond{
							Class: t.Class,
							A:     sc.Index(supercell.Site{Cell: cell, Sub: t.Local}),
							B:     sc.Index(supercell.Site{Cell: remoteCell, Sub: t.Remote}),
						},
						Cell:     cell,
						Template: ti,
						Wraps:    wraps,
					})
				}
			}
		}
	}

	return out, nil
}
