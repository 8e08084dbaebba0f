// SPDX-License-Identifier: MIT
// Package: simgraph/builder
//
// validators.go - input contracts checked before any pairwise work.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simgraph/entity"
)

// validateThreshold rejects NaN. Thresholds outside [-1,1] are accepted:
// above 1 no edge qualifies, below -1 every pair does.
func validateThreshold(t float64) error {
	if math.IsNaN(t) {
		return ErrInvalidThreshold
	}

	return nil
}

// validateEntities enforces non-empty unique IDs and a single vector length.
// The first offending entity is reported with its position.
func validateEntities(entities []entity.Entity) error {
	if len(entities) == 0 {
		return nil
	}
	dim := entities[0].Dim()
	seen := make(map[string]int, len(entities))
	for i, e := range entities {
		if e.ID == "" {
			return fmt.Errorf("entity %d: %w", i, ErrEmptyID)
		}
		if prev, ok := seen[e.ID]; ok {
			return fmt.Errorf("entity %d (%q) repeats entity %d: %w", i, e.ID, prev, ErrDuplicateID)
		}
		seen[e.ID] = i
		if e.Dim() != dim {
			return fmt.Errorf("entity %d (%q) has %d features, want %d: %w", i, e.ID, e.Dim(), dim, ErrDimensionMismatch)
		}
	}

	return nil
}
