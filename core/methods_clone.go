// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones keep vertex order, vertex Index values and edge IDs, and carry
//     nextIndex/nextEdgeID so later insertions on the clone never collide.
// Concurrency:
//   - Read lock on the source only; the clone is a fresh instance.

package core

// CloneEmpty returns a new Graph with the same vertices (order, Index, Group)
// but no edges.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneVerticesLocked(nil)
}

// Clone returns a deep copy of the Graph: vertices, edges and adjacency.
// Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneVerticesLocked(nil)
	for _, e := range g.edges {
		clone.copyEdge(e)
	}

	return clone
}

// cloneVerticesLocked copies vertices (all, or only those with keep[id] when
// keep is non-nil) together with the handle counters. Caller holds g.mu.
func (g *Graph) cloneVerticesLocked(keep map[string]bool) *Graph {
	out := NewGraph(WithCapacity(len(g.order)))
	out.nextIndex = g.nextIndex
	out.nextEdgeID = g.nextEdgeID
	for _, id := range g.order {
		if keep != nil && !keep[id] {
			continue
		}
		v := *g.vertices[id]
		out.vertices[id] = &v
		out.order = append(out.order, id)
		out.adjacency[id] = make(map[string]string)
	}

	return out
}

// copyEdge inserts a copy of e, preserving its ID and sequence.
// The receiver must be exclusively owned by the caller.
func (g *Graph) copyEdge(e *Edge) {
	ne := *e
	g.edges[ne.ID] = &ne
	g.adjacency[ne.From][ne.To] = ne.ID
	g.adjacency[ne.To][ne.From] = ne.ID
}
