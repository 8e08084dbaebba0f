// Package dfs implements depth-first search (single-source and forest) on an
// undirected core.Graph, and connected-component labeling built on it.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the full forest via
//     WithFullTraversal.
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts.
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count.
//   - Components(g): vertex sets of every connected component.
//   - Cancellation via context.Context.
//
// Determinism: roots are taken in vertex insertion order and neighbors come
// from core.NeighborIDs (insertion order), so Order and component membership
// order are reproducible.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook and filter overhead.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
