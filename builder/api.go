// SPDX-License-Identifier: MIT
// Package: simgraph/builder
//
// api.go - public entry-point of the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(entities, threshold, opts...).
//   - Validation happens up front (validators.go); pairwise scoring only starts
//     once the whole input is known to be well formed.
//   - Determinism: same entities and threshold ⇒ identical graphs (vertex
//     order, Index handles, edge IDs).
//   - Safety: never panic; return wrapped sentinel errors and no graph.

package builder

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/entity"
	"github.com/katalvlaran/simgraph/similarity"
)

const methodBuildGraph = "BuildGraph"

// BuildGraph creates an undirected similarity graph over entities.
//
// Every entity becomes a vertex (ID = entity ID, Group = entity group) in input
// order. Each unordered pair is scored once with similarity.Cosine and
// connected iff score ≥ threshold; the score is stored as the edge weight.
// Features holding NaN or ±Inf score 0 against every other entity.
//
// The second return value maps each entity ID to its vertex Index, which equals
// the entity's position in the input.
//
// Errors (wrapped with "BuildGraph: ..."):
//   - ErrInvalidThreshold for a NaN threshold.
//   - ErrEmptyID, ErrDuplicateID, ErrDimensionMismatch for malformed input.
//   - ctx.Err() when the context supplied via WithContext is cancelled.
//
// Complexity: O(n²·d) time, O(n + E) space.
func BuildGraph(entities []entity.Entity, threshold float64, opts ...Option) (*core.Graph, map[string]int, error) {
	cfg := newBuildConfig(opts...)

	if err := validateThreshold(threshold); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}
	if err := validateEntities(entities); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}

	n := len(entities)
	g := core.NewGraph(core.WithCapacity(n))
	lookup := make(map[string]int, n)
	for _, e := range entities {
		if err := g.AddVertex(e.ID, core.WithGroup(e.Group)); err != nil {
			return nil, nil, fmt.Errorf("%s: add vertex %q: %w", methodBuildGraph, e.ID, err)
		}
		v, err := g.Vertex(e.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: vertex %q: %w", methodBuildGraph, e.ID, err)
		}
		lookup[e.ID] = v.Index
	}

	edges, err := connectPairs(cfg, g, entities, threshold)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}

	cfg.logger.Debug("similarity graph built",
		zap.Int("entities", n),
		zap.Int("comparisons", PairCount(n)),
		zap.Int("edges", edges),
		zap.Float64("threshold", threshold),
	)

	return g, lookup, nil
}

// PairCount returns C(n,2), the number of unordered pairs among n entities.
// Non-positive n yields 0.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// connectPairs scores all i<j pairs and adds the qualifying edges.
// It returns the number of edges added.
func connectPairs(cfg buildConfig, g *core.Graph, entities []entity.Entity, threshold float64) (int, error) {
	added := 0
	for i := 0; i < len(entities); i++ {
		if err := cfg.ctx.Err(); err != nil {
			return added, err
		}
		a := entities[i]
		for j := i + 1; j < len(entities); j++ {
			b := entities[j]
			s, err := similarity.Cosine(a.Features, b.Features)
			if err != nil {
				return added, fmt.Errorf("score %q/%q: %w", a.ID, b.ID, err)
			}
			if s < threshold {
				continue
			}
			if _, err = g.AddEdge(a.ID, b.ID, s); err != nil {
				return added, fmt.Errorf("edge %q-%q: %w", a.ID, b.ID, err)
			}
			added++
		}
	}

	return added, nil
}
