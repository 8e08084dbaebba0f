package dfs

import (
	"fmt"

	"github.com/katalvlaran/simgraph/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from startID, or over every component
// when WithFullTraversal is set (startID is then ignored).
// On abort the partial Result is returned with Order cleared.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:  make([]string, 0, len(vertices)),
			Depth:  make(map[string]int, len(vertices)),
			Parent: make(map[string]string, len(vertices)),
			Tree:   make(map[string]int, len(vertices)),
		},
	}

	roots := []string{startID}
	if o.FullTraversal {
		roots = vertices
	}
	for _, root := range roots {
		if w.res.Visited(root) {
			continue
		}
		w.res.Roots = append(w.res.Roots, root)
		if err := w.traverse(root, 0, len(w.res.Roots)-1); err != nil {
			w.res.Order = nil
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at depth, then recurses into unvisited neighbors.
func (w *walker) traverse(id string, depth, tree int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Tree[id] = tree
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited(nid) {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1, tree); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
