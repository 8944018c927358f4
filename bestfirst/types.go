// Package bestfirst defines the branch and strategy contracts, the sentinel
// errors and the functional options of the best-first traversal kernel.
package bestfirst

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Sentinel errors for kernel construction and traversal.
var (
	// ErrExhausted is returned by Selector.Advance once the frontier is empty.
	// It marks normal termination and is never wrapped around a failure.
	ErrExhausted = errors.New("bestfirst: traversal exhausted")

	// ErrExpand wraps any error returned by Branch.Next while the selector
	// drains the current branch. The substrate error stays reachable via errors.Is.
	ErrExpand = errors.New("bestfirst: branch expansion failed")

	// ErrNilStrategy is returned when a Factory is built without a Strategy.
	ErrNilStrategy = errors.New("bestfirst: strategy is nil")

	// ErrNilCompare is returned when a Factory is built without an ordering.
	ErrNilCompare = errors.New("bestfirst: compare function is nil")

	// ErrNilStart is returned by Factory.Create for a nil start branch.
	ErrNilStart = errors.New("bestfirst: start branch is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bestfirst: invalid option supplied")

	// ErrStop may be returned by a Walk visitor to end the traversal early
	// without reporting an error.
	ErrStop = errors.New("bestfirst: stop walk")
)

// Branch is a path prefix from the traversal start to Node(), supplied by the
// graph substrate.
//
// Next returns the next child branch that this branch has not produced yet,
// or (nil, nil) once it has no more children. The cursor behind Next belongs
// to the branch; it only moves forward and is never rewound by the kernel.
type Branch[K comparable] interface {
	Node() K
	Next() (Branch[K], error)
}

// Strategy parameterizes the kernel. P is the accumulated priority and D the
// incremental value of one candidate branch.
//
// Combine must be consistent with the order handed to the Factory; the kernel
// does not detect non-transitive orderings, their behavior is undefined.
type Strategy[K comparable, P, D any] interface {
	// InitialValue is the accumulated priority of the start branch.
	InitialValue() P
	// IncrementalValue is evaluated once per candidate branch.
	IncrementalValue(b Branch[K]) D
	// Combine returns the priority of b reached from a branch with priority current.
	Combine(b Branch[K], current P, value D) P
}

// StrategyFuncs adapts three plain functions to the Strategy interface.
type StrategyFuncs[K comparable, P, D any] struct {
	Initial     func() P
	Incremental func(b Branch[K]) D
	Add         func(b Branch[K], current P, value D) P
}

// InitialValue calls f.Initial.
func (f StrategyFuncs[K, P, D]) InitialValue() P { return f.Initial() }

// IncrementalValue calls f.Incremental.
func (f StrategyFuncs[K, P, D]) IncrementalValue(b Branch[K]) D { return f.Incremental(b) }

// Combine calls f.Add.
func (f StrategyFuncs[K, P, D]) Combine(b Branch[K], current P, value D) P {
	return f.Add(b, current, value)
}

// validate reports which function field is missing, if any.
func (f StrategyFuncs[K, P, D]) validate() error {
	switch {
	case f.Initial == nil:
		return fmt.Errorf("%w: Initial func missing", ErrNilStrategy)
	case f.Incremental == nil:
		return fmt.Errorf("%w: Incremental func missing", ErrNilStrategy)
	case f.Add == nil:
		return fmt.Errorf("%w: Add func missing", ErrNilStrategy)
	}
	return nil
}

// Option configures a Factory via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by NewFactory.
type Option func(*Options)

// Options holds the ambient configuration shared by every Selector of a Factory.
type Options struct {
	// Name labels log records and metric attributes of this factory's traversals.
	Name string

	// Logger receives Debug records for selector lifecycle and decrease-key
	// events, and Warn records for expansion failures.
	Logger *slog.Logger

	// MeterProvider supplies the meter for the kernel counters.
	MeterProvider metric.MeterProvider

	// Capacity pre-sizes the frontier and visited set of each selector.
	Capacity int

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Name "bestfirst"
//   - a logger that discards everything
//   - the global OpenTelemetry meter provider
//   - no pre-sizing.
func DefaultOptions() Options {
	return Options{
		Name:          "bestfirst",
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		MeterProvider: otel.GetMeterProvider(),
	}
}

// WithName sets the traversal label. Empty names are ignored.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider. A nil provider is ignored.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}

// WithCapacity pre-sizes per-selector storage for about n distinct nodes.
//
//	n > 0: pre-size
//	n == 0: grow on demand
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}
