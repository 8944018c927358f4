package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/bestfirst/bestfirst"
)

// Branch is a path of cells from the search start to Node(). It implements
// bestfirst.Branch[Point]; neighbors are generated from the grid
// connectivity on demand, so no adjacency is ever materialized.
type Branch struct {
	gg     *GridGraph
	water  bool // water cells may be entered
	at     Point
	parent *Branch
	cursor int

	// seeds are the children of a virtual root; a root has no cell of its own.
	seeds []Point
	root  bool
}

// Node returns the last cell of the path.
func (b *Branch) Node() Point { return b.at }

// Next returns the next neighbor branch, or (nil, nil) when the connectivity
// offsets are exhausted. It never fails.
func (b *Branch) Next() (bestfirst.Branch[Point], error) {
	if b.root {
		if b.cursor < len(b.seeds) {
			p := b.seeds[b.cursor]
			b.cursor++
			return b.child(p), nil
		}
		return nil, nil
	}
	for b.cursor < len(b.gg.offsets) {
		d := b.gg.offsets[b.cursor]
		b.cursor++
		p := Point{b.at.X + d[0], b.at.Y + d[1]}
		if !b.gg.InBounds(p) || (!b.water && !b.gg.IsLand(p)) {
			continue
		}
		return b.child(p), nil
	}
	return nil, nil
}

func (b *Branch) child(p Point) *Branch {
	return &Branch{gg: b.gg, water: b.water, at: p, parent: b}
}

// Parent returns the branch this one extends, nil for the start branch.
func (b *Branch) Parent() *Branch {
	if b.parent == nil || b.parent.root {
		return nil
	}
	return b.parent
}

// Path returns the cells from the start to Node.
func (b *Branch) Path() []Point {
	var n int
	for cur := b; cur != nil; cur = cur.Parent() {
		n++
	}
	out := make([]Point, n)
	for cur := b; cur != nil; cur = cur.Parent() {
		n--
		out[n] = cur.at
	}
	return out
}

// Start returns the zero-length branch at p for a walk over land cells.
func (gg *GridGraph) Start(p Point) (*Branch, error) {
	if err := gg.checkLand(p); err != nil {
		return nil, err
	}
	return &Branch{gg: gg, at: p}, nil
}

// spread returns a virtual root whose children are seeds, for a walk that
// may also cross water.
func (gg *GridGraph) spread(seeds []Point) *Branch {
	return &Branch{gg: gg, water: true, at: Point{-1, -1}, seeds: seeds, root: true}
}

func (gg *GridGraph) checkLand(p Point) error {
	if !gg.InBounds(p) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}
	if !gg.IsLand(p) {
		return fmt.Errorf("%w: %s", ErrWater, p)
	}
	return nil
}
