// Package bfs is breadth-first search over a core.Graph, expressed as a
// best-first traversal in which every edge costs one hop.
//
// With unit steps the kernel's frontier holds at most two depths at a time,
// and entries of equal depth leave it in arrival order, so the visit sequence
// is exactly that of a FIFO queue: level by level, and within a level in the
// order the vertices were first discovered. Edge weights are ignored.
//
// What
//
//   - BFS returns a Result with:
//   - Order: visit sequence, start first
//   - Depth: vertex → distance in edges from the start
//   - Parent: vertex → its predecessor in the BFS tree
//   - OnVisit hook, which may abort the search with an error.
//   - Per-edge neighbor filter via WithFilterNeighbor.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Directed, undirected and mixed-direction graphs.
//
// Determinism
//
//	core.Graph.Neighbors lists edges in insertion order and the frontier
//	breaks ties by arrival, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Graph.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled.
package bfs
