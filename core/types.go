// Package core defines the Graph, Vertex and Edge types and the sentinel
// errors returned by graph primitives.
//
// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between an already connected pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex (the entity identifier).
	ID string

	// Index is the stable ordinal handle assigned at insertion time.
	// Indices grow monotonically and are never reused within a Graph lineage.
	Index int

	// Group is the optional category label (e.g. a season) carried by the vertex.
	Group string
}

// Edge represents an undirected connection between two vertices.
//
// From/To record the order in which the endpoints were passed to AddEdge;
// the edge is traversable in both directions.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint ID.
	From string

	// To is the second endpoint ID.
	To string

	// Weight is the similarity score that produced the edge.
	Weight float64

	seq uint64 // creation sequence, used for deterministic ordering
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes internal maps for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// VertexOption configures a vertex when it is first inserted.
type VertexOption func(v *Vertex)

// WithGroup attaches a category label to the vertex.
func WithGroup(group string) VertexOption {
	return func(v *Vertex) { v.Group = group }
}

// Graph is the undirected, weighted, simple graph used across simgraph.
//
// mu guards every field below it. nextIndex and nextEdgeID only grow, which
// keeps vertex handles and edge IDs unique across Clone/InducedSubgraph.
type Graph struct {
	mu sync.RWMutex

	capacity int // construction-time sizing hint

	nextIndex  int    // next vertex ordinal
	nextEdgeID uint64 // next edge sequence number

	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // live vertex IDs in insertion order
	edges    map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID; mirrored for v→u.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus the optional capacity pre-allocation).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string, g.capacity)

	return g
}
