package controller

import (
	"fmt"
	"net/http"
	"shortener/pkg/metrics"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording the latency of every request in
// the http.server.duration histogram, labeled by method and status code.
func WithMetrics(next http.Handler, mp metric.MeterProvider) (http.Handler, error) {
	duration, err := mp.Meter("shortener/pkg/controller").Float64Histogram("http.server.duration",
		metric.WithDescription("Latency of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create http duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &accessRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("status", strconv.Itoa(rec.status)),
		))
	}), nil
}
