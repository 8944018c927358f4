// Package bestfirst is a generic best-first traversal kernel: it explores a
// graph node by node in order of a caller-supplied priority, discovering
// neighbors lazily, only when the branch leading to them becomes current.
//
// What
//
//   - Frontier: a min-priority container keyed by node identity, with
//     decrease-key (Offer) and extract-minimum (ExtractMin).
//   - Selector: the per-traversal state machine driven by Advance.
//   - Strategy: InitialValue, IncrementalValue and Combine, which together
//     pick the concrete algorithm.
//   - Factory: binds a Strategy and an order, creates one Selector per start.
//
// Why
//
//	Dijkstra, A* and bottleneck (widest-path) search share the same frontier
//	management and differ only in how a step is scored. Plugging the scoring
//	in as a value keeps the subtle parts (total order, decrease-key, visit
//	once) in one place.
//
// Algorithm
//
//	Advance():
//	  1. exhaust current: for child := range current.Next() until nil
//	       skip if child.Node() is visited
//	       p := Combine(child, priority(current), IncrementalValue(child))
//	       frontier.Offer(child.Node(), child, p)
//	  2. (node, b, p) := frontier.ExtractMin()
//	       empty → ErrExhausted (forever after)
//	       else  → mark node visited, current = b, return b
//
// Guarantees
//
//   - No node is yielded twice. Both checks are needed: the frontier holds one
//     entry per node, and visited nodes are never offered again.
//   - A node is yielded with the smallest priority among the branches to it
//     discovered before its extraction.
//   - With non-negative increments and a summing Combine, yielded priorities
//     are non-decreasing.
//   - Only the current branch is ever asked for children.
//
// Determinism
//
//	Offer ties keep the held entry; ExtractMin ties go to the earliest
//	surviving arrival. Given a deterministic substrate, the yield order is
//	fully reproducible.
//
// Errors
//
//	– ErrExhausted       normal end of traversal.
//	– ErrExpand          wraps a Branch.Next failure; fatal to that selector only.
//	– ErrNilStrategy, ErrNilCompare, ErrNilStart, ErrOptionViolation  construction errors.
//
// Complexity (V = discovered nodes, E = examined children)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Concurrency
//
//	Pull-based and single-threaded: there are no goroutines inside. A Selector
//	must be used by one goroutine at a time; distinct Selectors are independent.
//
// Example:
//
//	f, _ := bestfirst.NewOrderedFactory[string, int64, int64](bestfirst.StrategyFuncs[string, int64, int64]{
//	    Initial:     func() int64 { return 0 },
//	    Incremental: func(b bestfirst.Branch[string]) int64 { return weightOf(b) },
//	    Add:         func(_ bestfirst.Branch[string], cur, w int64) int64 { return cur + w },
//	})
//	sel, _ := f.Create(start)
//	for {
//	    b, err := sel.Advance()
//	    if errors.Is(err, bestfirst.ErrExhausted) {
//	        break
//	    }
//	    ...
//	}
package bestfirst
