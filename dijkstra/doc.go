// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core graphs with non-negative edge weights, as a client of the bestfirst
// traversal kernel.
//
// Overview:
//
//   - The graph is exposed to the kernel through package walk: every vertex
//     becomes a lazily expanded path branch.
//   - Strategy() supplies the priority rule: start at 0, add each edge weight
//     (saturating at math.MaxInt64). The kernel yields vertices in
//     non-decreasing distance, each exactly once. That order is Dijkstra's
//     settle order.
//   - Dijkstra returns the full distance map (and optionally predecessors);
//     ShortestPath stops as soon as the target is settled.
//
// Key features:
//
//   - ReturnPath: returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: stops once the next settled distance would exceed the cap.
//   - InfEdgeThreshold: edges with weight ≥ threshold are filtered out while
//     branches expand, so they never reach the frontier.
//   - Context: cancellation is checked between settled vertices.
//   - Logger/MeterProvider: forwarded to the kernel factory (traversal name "dijkstra").
//   - Mixed edges: per-edge directedness from core.WithEdgeDirected is honored.
//
// Complexity:
//
//   - Time:  O((V + E) log V). The frontier keeps one entry per vertex and
//     improves it in place, so the heap never holds more than V entries.
//   - Space: O(V + E) in the worst case: O(V) for distance and predecessor maps
//     and the retained path branches.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound:
//     input validation, checked in that order.
//   - ErrNegativeWeight: any negative edge, found by an O(E) pre-scan.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics raised by the option constructors.
//   - ErrNoPath: ShortestPath could not reach the target.
//   - context errors are returned unwrapped.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to B: %d, parent: %s\n", dist["B"], prev["B"])
package dijkstra
