package gridgraph

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/bestfirst/bestfirst"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a Point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBadPoint indicates a string that is not in "x,y" form.
	ErrBadPoint = errors.New("gridgraph: malformed point")
	// ErrWater indicates a search endpoint that is not a land cell.
	ErrWater = errors.New("gridgraph: point is not land")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates the target cannot be reached.
	ErrNoPath = errors.New("gridgraph: no path")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point addresses one cell; X is the column, Y the row.
type Point struct {
	X, Y int
}

// String renders p as "x,y", the vertex ID used by ToCoreGraph.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built
// and safe for concurrent searches.
type GridGraph struct {
	Width, Height int
	Conn          Connectivity
	LandThreshold int

	cells   [][]int
	offsets [][2]int

	// walker prices every step at 1; bridger prices water entries at 1.
	walker  *bestfirst.Factory[Point, int, int]
	bridger *bestfirst.Factory[Point, int, int]
}
