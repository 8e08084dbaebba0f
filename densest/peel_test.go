package densest_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simgraph/core"
	"github.com/katalvlaran/simgraph/densest"
)

func graphOf(t *testing.T, vertices []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0.8)
		require.NoError(t, err)
	}

	return g
}

func TestFind_PairWithIsolatedVertex(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}})

	sub, d := densest.Find(g)
	require.InDelta(t, 0.5, d, 1e-12)
	require.Equal(t, []string{"A", "B"}, sub.Vertices())
	require.Equal(t, 1, sub.EdgeCount())
}

func TestFind_CliqueWithPendant(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"},
		{"D", "E"},
	})

	sub, d := densest.Find(g)
	require.InDelta(t, 1.5, d, 1e-12)
	require.Equal(t, []string{"A", "B", "C", "D"}, sub.Vertices())
	require.Equal(t, 6, sub.EdgeCount())
}

func TestFind_StrictImprovementKeepsEarlierCandidate(t *testing.T) {
	// Triangle plus pendant: 4/4 = 1 before and 3/3 = 1 after dropping the pendant.
	g := graphOf(t, []string{"A", "B", "C", "D"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"A", "C"}, {"A", "D"},
	})

	sub, d := densest.Find(g)
	require.InDelta(t, 1.0, d, 1e-12)
	require.Equal(t, 4, sub.VertexCount())
}

func TestFind_Degenerate(t *testing.T) {
	sub, d := densest.Find(nil)
	require.Equal(t, 0, sub.VertexCount())
	require.Equal(t, 0.0, d)

	sub, d = densest.Find(core.NewGraph())
	require.Equal(t, 0, sub.VertexCount())
	require.Equal(t, 0.0, d)

	sub, d = densest.Find(graphOf(t, []string{"solo"}, nil))
	require.Equal(t, []string{"solo"}, sub.Vertices())
	require.Equal(t, 0.0, d)

	sub, d = densest.Find(graphOf(t, []string{"A", "B", "C"}, nil))
	require.Equal(t, 3, sub.VertexCount(), "edgeless graph is returned whole")
	require.Equal(t, 0.0, d)
}

func TestFind_IndependentResult(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}})

	sub, _ := densest.Find(g)
	require.NoError(t, sub.RemoveVertex("A"))
	require.True(t, g.HasEdge("A", "B"), "input graph untouched")
	require.Equal(t, 3, g.VertexCount())

	e, err := g.EdgeBetween("A", "B")
	require.NoError(t, err)
	require.InDelta(t, 0.8, e.Weight, 1e-12)
}

func TestPeel_Trace(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}})

	r := densest.Peel(g)
	// C is the only degree-0 vertex; the A/B tie may break either way.
	require.Equal(t, "C", r.Order[0])
	require.ElementsMatch(t, []string{"A", "B", "C"}, r.Order)
	require.Len(t, r.Steps, 3)
	require.InDelta(t, 1.0/3.0, r.Steps[0], 1e-12)
	require.InDelta(t, 0.5, r.Steps[1], 1e-12)
	require.Equal(t, 0.0, r.Steps[2])
	require.Equal(t, 1, r.Best)
}

// TestFind_Properties checks on random graphs that the result density matches
// its own edges/nodes and is never below the full graph's density.
func TestFind_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		g := core.NewGraph()
		n := 2 + rnd.Intn(25)
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(fmt.Sprintf("v%d", i)))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rnd.Float64() < 0.3 {
					_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), 0.9)
					require.NoError(t, err)
				}
			}
		}

		sub, d := densest.Find(g)
		require.Positive(t, sub.VertexCount())
		require.InDelta(t, float64(sub.EdgeCount())/float64(sub.VertexCount()), d, 1e-12)
		require.GreaterOrEqual(t, d, g.Density()-1e-12)
		for _, id := range sub.Vertices() {
			require.True(t, g.HasVertex(id))
		}
	}
}
