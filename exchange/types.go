package exchange

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/htsegen/supercell"
)

// Method tags for error context.
const (
	methodParse    = "Parse"
	methodLoadYAML = "LoadYAML"
	methodLoad     = "Load"
	methodValidate = "Validate"
)

// Columns is the number of integers per text row.
const Columns = 6

// Template is one exchange class definition relative to a single unit cell.
// The remote site lives in the cell displaced by Offset from the local site's
// cell.
type Template struct {
	Class  int
	Local  int
	Remote int
	Offset supercell.Vec
}

// String renders t in the six-column text form.
func (t Template) String() string {
	return fmt.Sprintf("%d %d %d %d %d %d",
		t.Class, t.Local, t.Remote, t.Offset.X, t.Offset.Y, t.Offset.Z)
}

// Table is the read-only set of templates, in input order.
type Table struct {
	Templates []Template
}

// NewTable copies templates into a Table.
func NewTable(templates []Template) *Table {
	cp := make([]Template, len(templates))
	copy(cp, templates)

	return &Table{Templates: cp}
}

// Len returns the number of templates.
func (tb *Table) Len() int {
	return len(tb.Templates)
}

// Validate reports ErrEmptyTable or ErrMalformedTemplate.
// Complexity: O(T).
func (tb *Table) Validate() error {
	if len(tb.Templates) == 0 {
		return fmt.Errorf("%s: %w", methodValidate, ErrEmptyTable)
	}
	for i, t := range tb.Templates {
		if t.Local < 0 || t.Remote < 0 {
			return fmt.Errorf("%s: template %d (%s): negative sublattice: %w",
				methodValidate, i, t, ErrMalformedTemplate)
		}
		if t.Class < 0 {
			return fmt.Errorf("%s: template %d (%s): negative exchange class: %w",
				methodValidate, i, t, ErrMalformedTemplate)
		}
	}

	return nil
}

// Sublattices returns 1 + the largest sublattice index referenced by any
// template, or 0 for an empty table.
func (tb *Table) Sublattices() int {
	maxSub := -1
	for _, t := range tb.Templates {
		if t.Local > maxSub {
			maxSub = t.Local
		}
		if t.Remote > maxSub {
			maxSub = t.Remote
		}
	}

	return maxSub + 1
}

// Classes returns the distinct exchange classes in ascending order.
func (tb *Table) Classes() []int {
	seen := make(map[int]struct{}, len(tb.Templates))
	out := make([]int, 0, len(tb.Templates))
	for _, t := range tb.Templates {
		if _, ok := seen[t.Class]; ok {
			continue
		}
		seen[t.Class] = struct{}{}
		out = append(out, t.Class)
	}
	sort.Ints(out)

	return out
}

// ExchangeName returns the solver's label for a class: 0 -> "j1", 1 -> "j2".
func ExchangeName(class int) string {
	return fmt.Sprintf("j%d", class+1)
}
