package bestfirst

import (
	"context"
	"fmt"
	"log/slog"
)

// visitedSet records the nodes a selector has already yielded.
type visitedSet[K comparable] map[K]struct{}

func (v visitedSet[K]) add(k K) { v[k] = struct{}{} }

func (v visitedSet[K]) has(k K) bool {
	_, ok := v[k]
	return ok
}

// Selector is the state of one best-first traversal.
//
// Each call to Advance drains the current branch's children into the
// frontier, then extracts the frontier minimum as the new current branch.
// A node is yielded at most once, with the lowest priority known among the
// branches reaching it that were discovered before it was extracted.
//
// A Selector is not safe for concurrent use. Abandoning it is enough to
// cancel the traversal; there is nothing to close.
type Selector[K comparable, P, D any] struct {
	factory  *Factory[K, P, D]
	ctx      context.Context
	log      *slog.Logger
	frontier *Frontier[K, Branch[K], P]
	visited  visitedSet[K]

	current  Branch[K]
	priority P

	done bool
	err  error
}

// Advance returns the next branch in best-first order.
//
// It returns ErrExhausted once no candidates remain, and from then on for
// every call. A substrate failure is returned wrapped in ErrExpand; the
// selector keeps returning that same error afterwards.
func (s *Selector[K, P, D]) Advance() (Branch[K], error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.done {
		return nil, ErrExhausted
	}

	if err := s.exhaustCurrent(); err != nil {
		s.err = err
		return nil, err
	}

	node, b, p, ok := s.frontier.ExtractMin()
	if !ok {
		s.done = true
		s.log.Debug("traversal exhausted", slog.Int("visited", len(s.visited)))
		return nil, ErrExhausted
	}
	s.current, s.priority = b, p
	s.visited.add(node)
	s.factory.inst.yields.Add(s.ctx, 1, s.factory.inst.base)
	return b, nil
}

// exhaustCurrent offers every unvisited child of the current branch.
func (s *Selector[K, P, D]) exhaustCurrent() error {
	strategy := s.factory.strategy
	inst := s.factory.inst
	debug := s.log.Enabled(s.ctx, slog.LevelDebug)

	for {
		child, err := s.current.Next()
		if err != nil {
			inst.expandErr.Add(s.ctx, 1, inst.base)
			s.log.Warn("branch expansion failed",
				slog.Any("node", s.current.Node()),
				slog.String("error", err.Error()))
			return fmt.Errorf("%w: node %v: %w", ErrExpand, s.current.Node(), err)
		}
		if child == nil {
			return nil
		}
		inst.examined.Add(s.ctx, 1, inst.base)

		node := child.Node()
		if s.visited.has(node) {
			inst.skips.Add(s.ctx, 1, inst.base)
			continue
		}

		p := strategy.Combine(child, s.priority, strategy.IncrementalValue(child))
		r := s.frontier.Offer(node, child, p)
		inst.recordOffer(s.ctx, r)
		if debug && r == Improved {
			s.log.Debug("frontier entry improved", slog.Any("node", node))
		}
	}
}

// Current returns the branch yielded by the last successful Advance, or the
// start branch before the first one.
func (s *Selector[K, P, D]) Current() Branch[K] { return s.current }

// Priority returns the accumulated priority of Current.
func (s *Selector[K, P, D]) Priority() P { return s.priority }

// Visited reports whether node has already been yielded.
func (s *Selector[K, P, D]) Visited(node K) bool { return s.visited.has(node) }

// VisitedCount returns the number of nodes yielded so far.
func (s *Selector[K, P, D]) VisitedCount() int { return len(s.visited) }

// FrontierLen returns the number of discovered nodes waiting in the frontier.
func (s *Selector[K, P, D]) FrontierLen() int { return s.frontier.Len() }

// Done reports whether the selector reached exhaustion or failed.
func (s *Selector[K, P, D]) Done() bool { return s.done || s.err != nil }
