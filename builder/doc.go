// Package builder turns a sequence of entities into the similarity graph
// consumed by the analyzers.
//
// For n entities BuildGraph:
//
//   - validates the whole input before any pairwise work (non-empty and unique
//     identifiers, one common feature-vector length, a non-NaN threshold);
//   - adds one vertex per entity, in input order, labeled with the entity ID
//     and carrying its group;
//   - scores every unordered pair {i,j}, i<j, exactly once (C(n,2) cosine
//     comparisons) and adds an undirected edge iff score ≥ threshold, with the
//     score as the edge weight.
//
// The threshold is inclusive: entities with identical non-zero feature vectors
// always connect for any threshold ≤ 1.0. Raising the threshold can only drop
// edges, never add them.
//
// Guarantees:
//
//   - Fail fast: any validation failure returns a sentinel error (wrapped with
//     context) and no graph; there is no partial result.
//   - Deterministic: equal inputs produce equal graphs (vertex order, edge IDs).
//   - Duplicate identifiers are rejected (ErrDuplicateID) rather than silently
//     collapsing two entities onto one vertex.
//
// Complexity: O(n²·d) time for n entities of dimension d, O(n + E) space.
package builder
