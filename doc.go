// Package bestfirst is the module root: a best-first traversal kernel and the
// graph searches built on top of it.
//
// One kernel, many searches
//
//	The bestfirst/ subpackage holds a generic Selector that repeatedly hands
//	out the cheapest unsettled branch of a lazily expanded search tree. What
//	"cheapest" means is a Strategy: a start value, the value of one step and
//	a way to combine the two. Every search below is that kernel plus a
//	Strategy and a substrate:
//
//		bfs/          - unit steps: hop counts and BFS layers
//		dijkstra/     - summed weights: single-source shortest paths
//		astar/        - summed weights plus an estimate, compared by (F, G)
//		widest/       - the narrowest edge so far, wider first
//		prim_kruskal/ - the last edge alone: Prim's spanning tree (and Kruskal)
//		gridgraph/    - grids searched in place, keyed by Point
//
// Substrates
//
//	core/ is the thread-safe in-memory Graph; walk/ turns any edge source
//	into kernel branches, loading neighbors only when a branch is expanded.
//	gridgraph/ generates grid neighbors arithmetically instead.
//
// Around them
//
//	repr/ renders results (paths, edges, scalars, lists and maps) as JSON,
//	YAML or text; internal/graphfile loads graphs and grids from YAML; and
//	cmd/bestfirst is the command line front end.
//
// Quick example:
//
//	    A──4──B
//	    │     │
//	    2     5
//	    │     │
//	    C──3──E──5──D
//
//	g := core.NewGraph(core.WithWeighted())
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("A", "C", 2)
//	g.AddEdge("B", "D", 5)
//	g.AddEdge("C", "E", 3)
//	g.AddEdge("E", "D", 5)
//	p, _ := dijkstra.ShortestPath(g, "A", "D") // A→B→D, distance 9
package bestfirst
