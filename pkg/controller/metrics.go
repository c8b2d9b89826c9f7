package controller

import (
	"net/http"
	"strconv"
	"time"

	"auditor/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware recording request counts and latencies via
// the given meter provider. Requests are labeled by method and status code;
// the path is deliberately excluded to keep cardinality bounded.
func WithMetrics(next http.Handler, provider metric.MeterProvider) (http.Handler, error) {
	meter := provider.Meter("auditor/controller")

	requests, err := meter.Int64Counter("http_requests_total",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("http_request_duration_seconds",
		metric.WithDescription("HTTP request handling duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("status", strconv.Itoa(rec.status)),
		)
		requests.Add(r.Context(), 1, attrs)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
