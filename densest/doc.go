// Package densest approximates the densest subgraph of a core.Graph with
// greedy peeling (Charikar's 2-approximation for density = edges/nodes).
//
// Algorithm
//
//	Repeatedly remove a minimum-degree vertex. Before each removal the density
//	of the remaining graph is measured; the first step reaching the strictly
//	highest density wins. The full graph at density 0 is the initial
//	candidate, so an edgeless graph is returned whole.
//
// Which vertex is removed among several of minimum degree is incidental and
// not part of the contract. Any choice keeps the approximation guarantee and
// the density values; callers must not rely on Order within a tie.
//
// The input graph is never mutated: peeling runs on an owned index-based copy
// of the adjacency and the winner is materialized with core.InducedSubgraph.
//
// Complexity: O(V² + E) time (linear scan for the minimum degree), O(V + E) memory.
package densest
