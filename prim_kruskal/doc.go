// Package prim_kruskal computes Minimum Spanning Trees on an undirected,
// weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// Prim grows one tree from a root by running the bestfirst kernel with a
// priority that is not accumulated: a candidate vertex is ranked by the
// weight of the single edge joining it to the tree. The kernel's visited set
// is the tree, and a lighter edge to a waiting vertex replaces the held one
// through decrease-key.
//
// Kruskal sorts all edges by weight (stable, so insertion order breaks
// ties) and merges components with a union-find forest.
//
// Complexity
//
//   - Prim:    O(E log V) time, O(V) frontier.
//   - Kruskal: O(E log E + E·α(V)) time, O(V + E) memory.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, unweighted, directed, or holds a
//     directed edge through mixed-mode overrides.
//   - ErrEmptyRoot: Prim called with root == "".
//   - core.ErrVertexNotFound: Prim root absent from the graph.
//   - ErrDisconnected: no spanning tree exists (empty or disconnected graph).
//   - ErrUnknownMethod: Compute asked for a method other than prim or kruskal.
//
// Self-loops never join an MST and are ignored; among parallel edges only the
// lightest can be chosen.
package prim_kruskal
