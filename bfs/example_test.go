package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/simgraph/bfs"
	"github.com/katalvlaran/simgraph/core"
)

// ExampleBFS walks a small similarity graph and reports hop distances.
func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("Duke", "UNC", 0.93)
	_, _ = g.AddEdge("UNC", "Kansas", 0.88)
	_ = g.AddVertex("Yale")

	res, err := bfs.BFS(g, "Duke")
	if err != nil {
		panic(err)
	}
	path, _ := res.PathTo("Kansas")
	fmt.Println(res.Order)
	fmt.Println(path, res.Reached(), res.DistanceSum())
	// Output:
	// [Duke UNC Kansas]
	// [Duke UNC Kansas] 3 3
}
