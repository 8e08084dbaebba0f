package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/core"
)

// TestConcurrentReaders ensures many readers can share one graph while a
// writer works on its own clone.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range g.Vertices() {
				if _, err := g.NeighborIDs(id); err != nil {
					t.Errorf("NeighborIDs(%s): %v", id, err)
				}
			}
			_ = g.Edges()
			_ = g.Density()
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		c := g.Clone()
		for _, id := range c.Vertices() {
			_ = c.RemoveVertex(id)
		}
	}()
	wg.Wait()

	require.Equal(t, 51, g.VertexCount())
	require.Equal(t, 50, g.EdgeCount())
}

// TestConcurrentAddEdge verifies edge IDs stay unique under parallel writers.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const workers, perWorker = 4, 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("w%d-%d", w, i), 1); err != nil {
					t.Errorf("AddEdge: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, e := range g.Edges() {
		require.False(t, seen[e.ID], "duplicate edge ID %s", e.ID)
		seen[e.ID] = true
	}
	require.Len(t, seen, workers*perWorker)
}
