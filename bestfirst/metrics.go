package bestfirst

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope of the kernel counters.
const meterName = "github.com/katalvlaran/bestfirst"

// instruments groups the counters shared by all selectors of one Factory.
type instruments struct {
	created   metric.Int64Counter
	examined  metric.Int64Counter
	offers    metric.Int64Counter
	skips     metric.Int64Counter
	yields    metric.Int64Counter
	expandErr metric.Int64Counter

	// attribute sets are built once per factory, not per event
	base     metric.MeasurementOption
	inserted metric.MeasurementOption
	improved metric.MeasurementOption
	rejected metric.MeasurementOption
}

func newInstruments(mp metric.MeterProvider, name string) (*instruments, error) {
	meter := mp.Meter(meterName)
	in := &instruments{}

	var err error
	if in.created, err = meter.Int64Counter(
		"bestfirst_selectors_created_total",
		metric.WithDescription("Number of selectors created"),
	); err != nil {
		return nil, fmt.Errorf("bestfirst: creating selectors counter: %w", err)
	}
	if in.examined, err = meter.Int64Counter(
		"bestfirst_children_examined_total",
		metric.WithDescription("Child branches produced by the substrate during expansion"),
	); err != nil {
		return nil, fmt.Errorf("bestfirst: creating examined counter: %w", err)
	}
	if in.offers, err = meter.Int64Counter(
		"bestfirst_offers_total",
		metric.WithDescription("Frontier offers by outcome"),
	); err != nil {
		return nil, fmt.Errorf("bestfirst: creating offers counter: %w", err)
	}
	if in.skips, err = meter.Int64Counter(
		"bestfirst_visited_skips_total",
		metric.WithDescription("Children discarded because their node was already visited"),
	); err != nil {
		return nil, fmt.Errorf("bestfirst: creating skips counter: %w", err)
	}
	if in.yields, err = meter.Int64Counter(
		"bestfirst_yields_total",
		metric.WithDescription("Branches yielded by Advance"),
	); err != nil {
		return nil, fmt.Errorf("bestfirst: creating yields counter: %w", err)
	}
	if in.expandErr, err = meter.Int64Counter(
		"bestfirst_expand_errors_total",
		metric.WithDescription("Substrate failures while expanding a branch"),
	); err != nil {
		return nil, fmt.Errorf("bestfirst: creating expand errors counter: %w", err)
	}

	traversal := attribute.String("traversal", name)
	in.base = metric.WithAttributeSet(attribute.NewSet(traversal))
	in.inserted = metric.WithAttributeSet(attribute.NewSet(traversal, attribute.String("outcome", Inserted.String())))
	in.improved = metric.WithAttributeSet(attribute.NewSet(traversal, attribute.String("outcome", Improved.String())))
	in.rejected = metric.WithAttributeSet(attribute.NewSet(traversal, attribute.String("outcome", Rejected.String())))
	return in, nil
}

// recordOffer counts one frontier offer under its outcome.
func (in *instruments) recordOffer(ctx context.Context, r OfferResult) {
	switch r {
	case Inserted:
		in.offers.Add(ctx, 1, in.inserted)
	case Improved:
		in.offers.Add(ctx, 1, in.improved)
	default:
		in.offers.Add(ctx, 1, in.rejected)
	}
}
