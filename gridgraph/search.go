package gridgraph

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/bestfirst/bestfirst"
)

// steps prices every move at cost(b), accumulated as a plain sum.
func steps(cost func(b bestfirst.Branch[Point]) int) bestfirst.StrategyFuncs[Point, int, int] {
	return bestfirst.StrategyFuncs[Point, int, int]{
		Initial:     func() int { return 0 },
		Incremental: cost,
		Add:         func(_ bestfirst.Branch[Point], cur, w int) int { return cur + w },
	}
}

func (gg *GridGraph) factory(cost func(b bestfirst.Branch[Point]) int, name string) (*bestfirst.Factory[Point, int, int], error) {
	return bestfirst.NewOrderedFactory[Point, int, int](steps(cost),
		bestfirst.WithName(name),
		bestfirst.WithCapacity(gg.Width*gg.Height))
}

func unit(bestfirst.Branch[Point]) int { return 1 }

// conversion prices entering a water cell at 1 and land at 0.
func (gg *GridGraph) conversion(b bestfirst.Branch[Point]) int {
	if gg.IsLand(b.Node()) {
		return 0
	}
	return 1
}

// ShortestPath returns the fewest-steps land path from → to and its length.
//
// Errors: ErrOutOfBounds, ErrWater for a bad endpoint; ErrNoPath when no
// land route joins them.
// Complexity: O(W×H×d×log(W×H)).
func (gg *GridGraph) ShortestPath(from, to Point) ([]Point, int, error) {
	start, err := gg.Start(from)
	if err != nil {
		return nil, 0, err
	}
	if err = gg.checkLand(to); err != nil {
		return nil, 0, err
	}
	if from == to {
		return []Point{from}, 0, nil
	}

	return search(gg.walker, start, func(p Point) bool { return p == to })
}

// search advances until a cell satisfying goal is yielded.
func search(f *bestfirst.Factory[Point, int, int], start *Branch, goal func(Point) bool) ([]Point, int, error) {
	sel, err := f.Create(start)
	if err != nil {
		return nil, 0, err
	}
	for {
		b, err := sel.Advance()
		if errors.Is(err, bestfirst.ErrExhausted) {
			return nil, 0, ErrNoPath
		}
		if err != nil {
			return nil, 0, err
		}
		if goal(b.Node()) {
			return b.(*Branch).Path(), sel.Priority(), nil
		}
	}
}

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells according to gg.Conn. Components are ordered by their first cell in
// row-major order, and the cells of each component likewise.
// Complexity: O(W×H×d×log(W×H)), Memory: O(W×H).
func (gg *GridGraph) ConnectedComponents() ([][]Point, error) {
	byIndex := func(a, b Point) int { return cmp.Compare(gg.index(a), gg.index(b)) }

	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{x, y}
			if !gg.IsLand(p) || seen[gg.index(p)] {
				continue
			}
			seen[gg.index(p)] = true
			comp := []Point{p}
			start, err := gg.Start(p)
			if err != nil {
				return nil, err
			}
			err = gg.walker.Walk(start, func(b bestfirst.Branch[Point], _ int) error {
				if q := b.Node(); !seen[gg.index(q)] {
					seen[gg.index(q)] = true
					comp = append(comp, q)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("gridgraph: component at %s: %w", p, err)
			}
			slices.SortFunc(comp, byIndex)
			comps = append(comps, comp)
		}
	}

	return comps, nil
}

// ExpandIsland finds a minimum-conversion route joining component srcComp
// to component dstComp, as numbered by ConnectedComponents. Entering a water
// cell costs 1, entering land costs 0; the search starts from every cell of
// srcComp at once and stops at the first cell of dstComp reached.
//
// Returns the cells of the route, both land endpoints included, and the
// number of water cells it converts.
// Complexity: O(W×H×d×log(W×H)), Memory: O(W×H).
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) ([]Point, int, error) {
	comps, err := gg.ConnectedComponents()
	if err != nil {
		return nil, 0, err
	}
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	dst := make(map[Point]struct{}, len(comps[dstComp]))
	for _, p := range comps[dstComp] {
		dst[p] = struct{}{}
	}

	return search(gg.bridger, gg.spread(comps[srcComp]), func(p Point) bool {
		_, ok := dst[p]
		return ok
	})
}
