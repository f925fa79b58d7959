package controller

import (
	"net/http"
	"time"

	"carmate/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware that records request duration and count
// per method and status code on the given meter.
func WithMetrics(meter otelmetric.Meter, next http.Handler) (http.Handler, error) {
	duration, err := meter.Float64Histogram("http_request_duration_seconds",
		otelmetric.WithDescription("HTTP request latency in seconds"),
		otelmetric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter("http_requests_total",
		otelmetric.WithDescription("Number of HTTP requests handled"))
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := otelmetric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.Int("status_code", rec.status),
		)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		total.Add(r.Context(), 1, attrs)
	}), nil
}
