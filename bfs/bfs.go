package bfs

import (
	"fmt"

	"github.com/katalvlaran/simgraph/core"
)

// queueItem pairs a vertex ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. The queue is consumed through
// head instead of reslicing so its backing array is reused.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	head  int
	res   *Result
}

// BFS runs breadth-first search on g from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// ctx.Err() on cancellation, or a wrapped OnVisit error.
// On error the partial result is returned alongside.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// enqueue marks id seen at depth d and records its parent.
// Depth doubles as the visited set.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues unseen neighbors.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
