package builder_test

import (
	"fmt"

	"github.com/katalvlaran/simgraph/builder"
	"github.com/katalvlaran/simgraph/entity"
)

// ExampleBuildGraph connects the two entities pointing the same way.
func ExampleBuildGraph() {
	es := []entity.Entity{
		{ID: "A", Features: []float64{1, 0}},
		{ID: "B", Features: []float64{1, 0}},
		{ID: "C", Features: []float64{0, 1}},
	}
	g, lookup, err := builder.BuildGraph(es, 0.5)
	if err != nil {
		panic(err)
	}
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(g.AdjacencyList()["A"], lookup["C"])
	// Output:
	// 3 1
	// [B] 2
}
