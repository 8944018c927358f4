// Package core provides the thread-safe in-memory Graph the traversal
// packages of this module run on.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Determinism:
//
//	Neighbors and Edges follow insertion order; Vertices and NeighborIDs are
//	sorted. Traversals over the same graph therefore discover children in the
//	same order on every run.
//
// Core Methods:
//
//	AddVertex(id string) error                                 // O(1)
//	HasVertex(id string) bool                                  // O(1)
//	AddEdge(from, to string, weight int64) (string, error)     // O(1)†
//	HasEdge(from, to string) bool                              // O(1)
//	Neighbors(id string) ([]*Edge, error)                      // O(d)
//	NeighborIDs(id string) ([]string, error)                   // O(d log d)
//	Vertices() []string                                        // O(V log V)
//	Edges() []*Edge                                            // O(E log E)
//	VertexCount(), EdgeCount() int                             // O(1)
//
// † amortized map growth.
package core
