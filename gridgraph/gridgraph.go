package gridgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/bestfirst/astar"
	"github.com/katalvlaran/bestfirst/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input, so later changes to values do not leak in.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, or the kernel's error if a
// search factory cannot be built.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = append([]int(nil), row...)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	gg := &GridGraph{
		Width:         w,
		Height:        h,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		cells:         cells,
		offsets:       offsets,
	}
	var err error
	if gg.walker, err = gg.factory(unit, "gridgraph.walk"); err != nil {
		return nil, err
	}
	if gg.bridger, err = gg.factory(gg.conversion, "gridgraph.expand"); err != nil {
		return nil, err
	}

	return gg, nil
}

// From2D is NewGridGraph with the default threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// InBounds reports whether p lies within the grid boundaries.
func (gg *GridGraph) InBounds(p Point) bool {
	return p.X >= 0 && p.X < gg.Width && p.Y >= 0 && p.Y < gg.Height
}

// Value returns the cell value at p, which must be in bounds.
func (gg *GridGraph) Value(p Point) int { return gg.cells[p.Y][p.X] }

// IsLand reports whether p is in bounds and holds at least LandThreshold.
func (gg *GridGraph) IsLand(p Point) bool {
	return gg.InBounds(p) && gg.cells[p.Y][p.X] >= gg.LandThreshold
}

// NeighborOffsets returns the (dx, dy) steps of the grid's connectivity,
// clockwise from north. The slice is shared; do not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int { return gg.offsets }

// index maps p to a row-major index: y*Width + x.
func (gg *GridGraph) index(p Point) int { return p.Y*gg.Width + p.X }

// ToCoreGraph converts the land cells into a weighted, undirected *core.Graph.
// Each land cell becomes a vertex with ID "x,y" (Point.String); unit-weight
// edges join land neighbors according to gg.Conn. Water cells are left out.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := Point{x, y}
			if !gg.IsLand(u) {
				continue
			}
			if err := g.AddVertex(u.String()); err != nil {
				return nil, err
			}
			for _, d := range gg.offsets {
				v := Point{x + d[0], y + d[1]}
				// each pair once, from its lower row-major end
				if !gg.IsLand(v) || gg.index(v) < gg.index(u) {
					continue
				}
				if _, err := g.AddEdge(u.String(), v.String(), 1); err != nil {
					return nil, fmt.Errorf("gridgraph: edge %s-%s: %w", u, v, err)
				}
			}
		}
	}

	return g, nil
}

// Heuristic returns an admissible, consistent astar.Heuristic toward target
// for the unit-weight graph built by ToCoreGraph: Manhattan distance under
// Conn4, Chebyshev distance under Conn8. IDs that are not "x,y" estimate 0.
func (gg *GridGraph) Heuristic(target Point) astar.Heuristic {
	return func(id string) int64 {
		p, err := ParsePoint(id)
		if err != nil {
			return 0
		}
		dx, dy := abs(p.X-target.X), abs(p.Y-target.Y)
		if gg.Conn == Conn8 {
			return int64(max(dx, dy))
		}
		return int64(dx + dy)
	}
}

// ParsePoint parses the "x,y" form produced by Point.String.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadPoint, s)
	}
	return Point{x, y}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
