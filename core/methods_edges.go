// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edge IDs are "e1", "e2", … in creation order.
//   - Edges() returns edges in creation order.
//
// Concurrency:
//   - Mutators take g.mu for writing, queries take it for reading.

package core

import (
	"math"
	"sort"
	"strconv"
)

const edgeIDPrefix = "e"

// AddEdge connects from and to with an undirected edge of the given weight and
// returns the new Edge.ID. Missing endpoints are created on the fly.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight or
// ErrMultiEdgeNotAllowed; on error the graph is left unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; ok {
		return "", ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.nextEdgeID++
	e := &Edge{
		ID:     edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10),
		From:   from,
		To:     to,
		Weight: weight,
		seq:    g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e.ID
	g.adjacency[to][from] = e.ID

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID from both endpoints.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether from and to are adjacent (order-independent).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeBetween returns a copy of the edge joining from and to.
// Returns ErrEmptyVertexID, ErrVertexNotFound or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (Edge, error) {
	if from == "" || to == "" {
		return Edge{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[from]
	if !ok {
		return Edge{}, ErrVertexNotFound
	}
	eid, ok := nbrs[to]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// Edges returns every edge in creation order.
// The returned pointers refer to live edges; treat them as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// sortEdges orders edges by creation sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
