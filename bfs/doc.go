// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// Edge weights are ignored: every edge counts as one hop. The similarity
// graph stores cosine scores as weights, but reachability and closeness are
// defined on hop counts only.
//
// Result
//
//   - Order:  visit sequence (non-decreasing depth).
//   - Depth:  vertex → hop distance from the start.
//   - Parent: vertex → predecessor in the BFS tree (start has none).
//   - Reached() and DistanceSum() summarize the component for closeness.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in vertex insertion order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 = no limit.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, nbr) == false.
//   - WithOnVisit(fn):        hook during visit; a returned error aborts BFS.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound for invalid input.
//   - ErrOptionViolation for invalid options (negative MaxDepth).
//   - ErrNeighbors if the graph fails a neighbor lookup.
//   - ctx.Err() on cancellation, wrapped OnVisit errors.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
