// SPDX-License-Identifier: MIT
// Package: simgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, e.g.
//       fmt.Errorf("%s: entity %d (%q): %w", methodBuildGraph, i, id, ErrDuplicateID)
//   • BuildGraph never panics at runtime; option constructors may panic on
//     programmer errors (nil logger, nil context).

package builder

import "errors"

// ErrInvalidThreshold indicates a NaN similarity threshold.
var ErrInvalidThreshold = errors.New("builder: invalid threshold")

// ErrEmptyID indicates an entity without an identifier.
var ErrEmptyID = errors.New("builder: entity identifier is empty")

// ErrDuplicateID indicates two entities share one identifier.
var ErrDuplicateID = errors.New("builder: duplicate entity identifier")

// ErrDimensionMismatch indicates feature vectors of unequal length.
var ErrDimensionMismatch = errors.New("builder: feature vectors differ in length")
