// SPDX-License-Identifier: MIT
// Package: htsegen/lattice
//
// options.go — functional options for Expand, Resolve and Build.
//
// Contract:
//   • Option constructors validate and panic on nil callbacks.
//   • Expansion itself never panics; it returns sentinel errors.
//   • Later options override earlier ones.

package lattice

// Option customises an expansion run.
type Option func(*config)

// config is the resolved option set, passed by value.
type config struct {
	// classFilter limits expansion to the classes it accepts; nil keeps all.
	classFilter func(class int) bool
	// onSelfBond observes each rejected self-bond; nil means no observer.
	onSelfBond func(Candidate)
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// keep reports whether templates of the given class take part in expansion.
func (c config) keep(class int) bool {
	return c.classFilter == nil || c.classFilter(class)
}

// WithClassFilter restricts expansion to templates whose exchange class
// satisfies pred. Candidates of rejected classes are never generated, so the
// cardinality becomes Nx·Ny·Nz·(accepted templates).
// Panics on nil.
func WithClassFilter(pred func(class int) bool) Option {
	if pred == nil {
		panic("lattice: WithClassFilter(nil)")
	}
	return func(c *config) {
		c.classFilter = pred
	}
}

// WithClasses is WithClassFilter for a fixed set of classes.
func WithClasses(classes ...int) Option {
	set := make(map[int]struct{}, len(classes))
	for _, cl := range classes {
		set[cl] = struct{}{}
	}

	return WithClassFilter(func(class int) bool {
		_, ok := set[class]
		return ok
	})
}

// WithSelfBondHook calls fn for every self-bond Resolve rejects, in
// generation order. Panics on nil.
func WithSelfBondHook(fn func(Candidate)) Option {
	if fn == nil {
		panic("lattice: WithSelfBondHook(nil)")
	}
	return func(c *config) {
		c.onSelfBond = fn
	}
}
