package centrality_test

import (
	"fmt"

	"github.com/katalvlaran/simgraph/centrality"
	"github.com/katalvlaran/simgraph/core"
)

// ExampleCloseness scores a three-vertex path; the middle vertex is closest
// to everyone.
func ExampleCloseness() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0.9)
	_, _ = g.AddEdge("B", "C", 0.8)

	for _, r := range centrality.Closeness(g).Ranked() {
		fmt.Printf("%s: %.3f\n", r.ID, r.Score)
	}
	// Output:
	// B: 1.000
	// A: 0.667
	// C: 0.667
}
