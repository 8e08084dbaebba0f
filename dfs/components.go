package dfs

import (
	"sort"

	"github.com/katalvlaran/simgraph/core"
)

// Components returns the vertex sets of g's connected components, largest
// first (ties keep discovery order). Members follow vertex insertion order.
// A nil or empty graph yields nil.
func Components(g *core.Graph) [][]string {
	if g == nil || g.VertexCount() == 0 {
		return nil
	}
	// Background context and no hooks: the forest walk cannot fail.
	res, _ := DFS(g, "", WithFullTraversal())

	out := make([][]string, len(res.Roots))
	for _, id := range g.Vertices() {
		t := res.Tree[id]
		out[t] = append(out[t], id)
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })

	return out
}
