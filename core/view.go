// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex order, vertex Index values and edge IDs.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by the vertex IDs with
// keep[id] == true: those vertices, and every edge whose endpoints are both
// kept. The input graph is not mutated and the result shares no storage with it.
// A nil graph yields an empty graph.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	if g == nil {
		return NewGraph()
	}
	if keep == nil {
		keep = map[string]bool{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneVerticesLocked(keep)
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			out.copyEdge(e)
		}
	}

	return out
}
