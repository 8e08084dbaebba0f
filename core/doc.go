// Package core provides the in-memory similarity Graph shared by every
// simgraph stage: the builder writes it once, and the analyzers read it.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; every edge is visible from both endpoints.
//   - Real-valued weights (float64). NaN and ±Inf are rejected with ErrBadWeight.
//   - Simple graph: at most one edge per unordered pair (ErrMultiEdgeNotAllowed)
//     and no self-loops (ErrLoopNotAllowed).
//   - Vertices keep insertion order. Each vertex receives a stable ordinal
//     Index at insertion time; indices are never reused, so they remain valid
//     handles after removals, clones and induced subgraphs.
//   - Edge IDs are generated sequentially ("e1", "e2", …) and carried over by
//     Clone/InducedSubgraph.
//   - A single sync.RWMutex guards vertices, edges and adjacency, so any number
//     of readers (e.g. centrality and densest-subgraph running side by side)
//     can share one Graph without coordination.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error // O(1), idempotent
//	HasVertex(id string) bool                        // O(1)
//	Vertex(id string) (Vertex, error)                // O(1), copy
//	RemoveVertex(id string) error                    // O(V + deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                                     // O(1)
//	HasEdge(from, to string) bool                                       // O(1)
//	EdgeBetween(from, to string) (Edge, error)                          // O(1), copy
//
//	// Query
//	Vertices() []string                  // O(V), insertion order
//	Edges() []*Edge                      // O(E·log E), creation order
//	Neighbors(id string) ([]*Edge, error)// O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), insertion order
//	Degree(id string) (int, error)       // O(1)
//	VertexCount(), EdgeCount() int       // O(1)
//	Density() float64                    // O(1), |E|/|V|
//
//	// Copies
//	Clone() *Graph                       // O(V + E)
//	CloneEmpty() *Graph                  // O(V)
//	InducedSubgraph(g, keep) *Graph      // O(V + E)
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – NaN or infinite weight
//	ErrLoopNotAllowed       – self-loop
//	ErrMultiEdgeNotAllowed  – second edge between the same pair
package core
