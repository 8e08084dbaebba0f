// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Mutators take g.mu for writing, queries take it for reading.

package core

// AddVertex inserts a new vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op and opts are ignored.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id, opts...)

	return nil
}

// addVertexLocked inserts id if absent. Caller holds g.mu for writing.
func (g *Graph) addVertexLocked(id string, opts ...VertexOption) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	v := &Vertex{ID: id, Index: g.nextIndex}
	for _, opt := range opts {
		opt(v)
	}
	g.nextIndex++
	g.vertices[id] = v
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]string)
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns a copy of the vertex with the given ID.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// RemoveVertex deletes the vertex and every incident edge.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(V + deg(v)); the O(V) part keeps insertion order compact.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}
	for nbr, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nbr], id)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)
	for i, vid := range g.order {
		if vid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a fresh copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// Density returns |E|/|V|, or 0 for a graph without vertices.
// Complexity: O(1).
func (g *Graph) Density() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if len(g.vertices) == 0 {
		return 0
	}

	return float64(len(g.edges)) / float64(len(g.vertices))
}
