// SPDX-License-Identifier: MIT
// Package: htsegen/exchange
//
// errors.go — sentinel errors for the exchange package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, line number, template position) is attached with %w.

package exchange

import "errors"

// ErrSyntax indicates an input row that is not six integers.
var ErrSyntax = errors.New("exchange: syntax error")

// ErrEmptyTable indicates that no templates were supplied, so the number of
// sublattice sites cannot be inferred.
var ErrEmptyTable = errors.New("exchange: empty template table")

// ErrMalformedTemplate indicates a template with a negative sublattice index
// or a negative exchange class.
var ErrMalformedTemplate = errors.New("exchange: malformed template")
