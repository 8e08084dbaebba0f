package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	OnVisit func(id string) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to Result.Order.
	OnExit func(id string) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only roots.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, returns false to skip a neighbor.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts from every unvisited vertex, covering the forest.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. Negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false; they are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in finish (post-order) sequence.
	Order []string

	// Depth maps each vertex to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each non-root vertex to its discoverer.
	Parent map[string]string

	// Roots lists the tree roots in traversal order.
	Roots []string

	// Tree maps each visited vertex to the index of its root in Roots.
	Tree map[string]int

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// Visited reports whether id was reached.
func (r *Result) Visited(id string) bool {
	_, ok := r.Tree[id]
	return ok
}
