// Package report condenses an analysis run into a Summary and renders it as
// plain text, JSON or YAML.
//
// The text layout is the human-readable results file:
//
//	Graph has 64 nodes and 512 edges
//	Average node degree: 16.00
//	Connected components: 3 (largest 60 nodes)
//
//	Top 5 entities by closeness centrality:
//	Duke (2023): 0.812
//	...
//
//	Densest subgraph: 20 nodes, density = 7.450
//	Top 5 nodes in densest subgraph by degree:
//	Duke (2023) (degree 17)
//	...
package report
