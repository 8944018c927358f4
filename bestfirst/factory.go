package bestfirst

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
)

// Factory binds one Strategy and one priority order to traversal start
// points. Every Create returns a Selector with its own frontier and visited
// set; selectors of the same Factory share no mutable state and may run on
// different goroutines.
type Factory[K comparable, P, D any] struct {
	strategy Strategy[K, P, D]
	compare  func(a, b P) int
	opts     Options
	log      *slog.Logger
	inst     *instruments
}

// NewFactory returns a Factory ordering priorities with compare.
//
// Returns ErrNilStrategy, ErrNilCompare or ErrOptionViolation for invalid input.
func NewFactory[K comparable, P, D any](s Strategy[K, P, D], compare func(a, b P) int, opts ...Option) (*Factory[K, P, D], error) {
	if s == nil {
		return nil, ErrNilStrategy
	}
	if funcs, ok := s.(StrategyFuncs[K, P, D]); ok {
		if err := funcs.validate(); err != nil {
			return nil, err
		}
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	inst, err := newInstruments(o.MeterProvider, o.Name)
	if err != nil {
		return nil, err
	}

	return &Factory[K, P, D]{
		strategy: s,
		compare:  compare,
		opts:     o,
		log:      o.Logger.With(slog.String("traversal", o.Name)),
		inst:     inst,
	}, nil
}

// NewOrderedFactory is NewFactory with the natural order of P.
func NewOrderedFactory[K comparable, P cmp.Ordered, D any](s Strategy[K, P, D], opts ...Option) (*Factory[K, P, D], error) {
	return NewFactory[K, P, D](s, cmp.Compare[P], opts...)
}

// Create starts a traversal at start. The start branch itself is never
// yielded; its children are the first candidates.
func (f *Factory[K, P, D]) Create(start Branch[K]) (*Selector[K, P, D], error) {
	if start == nil {
		return nil, ErrNilStart
	}
	ctx := context.Background()
	f.inst.created.Add(ctx, 1, f.inst.base)
	f.log.Debug("selector created", slog.Any("start", start.Node()))

	return &Selector[K, P, D]{
		factory:  f,
		ctx:      ctx,
		log:      f.log,
		frontier: NewFrontier[K, Branch[K], P](f.compare, f.opts.Capacity),
		visited:  make(visitedSet[K], f.opts.Capacity),
		current:  start,
		priority: f.strategy.InitialValue(),
	}, nil
}

// Walk drives a new traversal from start to exhaustion, calling fn with each
// yielded branch and its accumulated priority.
//
// fn may return ErrStop to end the walk early; Walk then returns nil. Any
// other error from fn, and any expansion failure, is returned as is.
func (f *Factory[K, P, D]) Walk(start Branch[K], fn func(b Branch[K], priority P) error) error {
	s, err := f.Create(start)
	if err != nil {
		return err
	}
	for {
		b, err := s.Advance()
		if errors.Is(err, ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = fn(b, s.Priority()); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
}

// Options returns a copy of the factory configuration.
func (f *Factory[K, P, D]) Options() Options { return f.opts }
