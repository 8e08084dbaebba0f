// Package simgraph builds a similarity graph from entity feature vectors and
// analyzes its structure.
//
// Each entity (e.g. one team-season) carries an ordered numeric feature
// vector. Entities whose cosine similarity reaches a threshold are connected
// by an undirected edge weighted with that similarity. Two analyses then run
// on the finished graph:
//
//   - closeness centrality of every vertex within its connected component;
//   - the densest subgraph (edges/nodes), approximated by greedy peeling.
//
// Layout:
//
//	core/        — thread-safe undirected Graph, Vertex, Edge, induced subgraphs
//	entity/      — the Entity record and its validation
//	similarity/  — cosine similarity
//	builder/     — entities → similarity graph
//	bfs/, dfs/   — traversals; dfs also labels connected components
//	centrality/  — closeness centrality
//	densest/     — greedy peeling densest subgraph
//	dataset/     — CSV ingestion
//	report/      — run summary and text/JSON/YAML rendering
//	pipeline/    — load → build → analyze → report
//	config/      — viper configuration and zap logger
//	cmd/simgraph — command-line entry point
//
// Quick start:
//
//	simgraph analyze "March Madness.csv" --threshold 0.5 --output output_results.txt
package simgraph
