// Package gridgraph treats a rectangular grid of integer cells as a graph and
// searches it with the bestfirst kernel directly, without building a
// core.Graph first.
//
// What:
//
//   - GridGraph wraps a [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are land, the rest are water.
//   - Branches over Points feed the kernel; neighbors follow Conn4 or Conn8.
//   - ShortestPath: fewest land steps between two land cells.
//   - ConnectedComponents: contiguous "islands" of land cells.
//   - ExpandIsland: fewest water conversions joining two islands, searched
//     from every cell of the first island at once.
//   - ToCoreGraph and Heuristic bridge the grid to dijkstra and astar.
//
// Complexity:
//
//   - ShortestPath, ExpandIsland: O(W×H×d×log(W×H)), Memory: O(W×H)   (d = 4 or 8).
//   - ConnectedComponents:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToCoreGraph:                O(W×H×d), Memory: O(W×H + E).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a Point lies outside the grid.
//   - ErrBadPoint: a string is not in "x,y" form.
//   - ErrWater: an endpoint of ShortestPath is not land.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: the target cannot be reached.
package gridgraph
