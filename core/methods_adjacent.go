// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
//
// Determinism:
//   - Neighbors() sorts by edge creation order.
//   - NeighborIDs() sorts by vertex Index (insertion order).
//   - AdjacencyList() values follow NeighborIDs() order.

package core

import "sort"

// Neighbors returns every edge incident to id, sorted by creation order.
// Returned pointers refer to live edges; treat them as read-only.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d) for a vertex of degree d.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(nbrs))
	for _, eid := range nbrs {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, in vertex insertion order.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.sortedNeighborsLocked(nbrs), nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its neighbor IDs.
// Each slice is freshly allocated and ordered like NeighborIDs.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = g.sortedNeighborsLocked(nbrs)
	}

	return out
}

// sortedNeighborsLocked flattens a neighbor bucket ordered by vertex Index.
// Caller holds g.mu.
func (g *Graph) sortedNeighborsLocked(nbrs map[string]string) []string {
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool {
		return g.vertices[ids[i]].Index < g.vertices[ids[j]].Index
	})

	return ids
}
