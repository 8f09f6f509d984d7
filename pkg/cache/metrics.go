package cache

import (
	"context"
	"errors"
	"fmt"
	"shortener/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "shortener/pkg/cache"

type instruments struct {
	hits          metric.Int64Counter
	misses        metric.Int64Counter
	invalidations metric.Int64Counter
	duration      metric.Float64Histogram
}

func newInstruments(mp metric.MeterProvider) (*instruments, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	hits, err := meter.Int64Counter("cache.hits",
		metric.WithDescription("Number of cache lookups served from the cache"))
	if err != nil {
		return nil, fmt.Errorf("could not create hits counter: %w", err)
	}
	misses, err := meter.Int64Counter("cache.misses",
		metric.WithDescription("Number of cache lookups that fell through to the store"))
	if err != nil {
		return nil, fmt.Errorf("could not create misses counter: %w", err)
	}
	invalidations, err := meter.Int64Counter("cache.invalidations",
		metric.WithDescription("Number of cache keys deleted by invalidation"))
	if err != nil {
		return nil, fmt.Errorf("could not create invalidations counter: %w", err)
	}
	duration, err := meter.Float64Histogram("cache.backend.duration",
		metric.WithDescription("Latency of cache backend round trips"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &instruments{
		hits:          hits,
		misses:        misses,
		invalidations: invalidations,
		duration:      duration,
	}, nil
}

func (i *instruments) hit(ctx context.Context)  { i.hits.Add(ctx, 1) }
func (i *instruments) miss(ctx context.Context) { i.misses.Add(ctx, 1) }

func (i *instruments) invalidated(ctx context.Context, kind Kind, n int) {
	i.invalidations.Add(ctx, int64(n), metric.WithAttributes(attribute.String("kind", string(kind))))
}

func (i *instruments) observe(ctx context.Context, op string, start time.Time, err error) {
	i.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("op", op),
		attribute.Bool("error", err != nil && !errors.Is(err, ErrMiss)),
	))
}
