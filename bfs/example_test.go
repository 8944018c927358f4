package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/bfs"
	"github.com/katalvlaran/bestfirst/core"
)

// ExampleBFS_gridTraversal shows BFS layering on a 3×3 grid: the start,
// then its two neighbors, then the next anti-diagonal and so on.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 0)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 0)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo finds the fewest-hop route when a longer route is
// discovered first.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	// Route 1: A–B–C–D–K (4 hops)
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}
	// Route 2: A–E–F–K (3 hops)
	for _, e := range [][2]string{{"A", "E"}, {"E", "F"}, {"F", "K"}} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, _ := bfs.BFS(g, "A")
	path, err := res.PathTo("K")
	fmt.Println(path, res.Depth["K"], err)
	// Output:
	// [A E F K] 3 <nil>
}
