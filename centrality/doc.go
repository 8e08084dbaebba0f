// Package centrality scores every vertex of a core.Graph by closeness.
//
// Closeness of v is (R−1)/D where R is the number of vertices reachable from v
// (v included) and D the sum of hop distances from v to them. It is computed
// within v's connected component only; an isolated vertex scores 0.
// Edge weights are ignored.
//
// Scores are keyed by vertex ID and are always non-negative. The analysis
// never mutates the graph and is safe to run next to other readers.
//
// Complexity: one BFS per vertex, O(V·(V+E)) time, O(V) extra memory.
package centrality
