package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "TailCircle"

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	FeedRequestsTotal       metric.Int64Counter
	FeedFallbackErrorsTotal metric.Int64Counter
	DbQueryDurationSeconds  metric.Float64Histogram
	DbQueryErrorsTotal      metric.Int64Counter
	SwipesTotal             metric.Int64Counter
	SwipeLimitHitsTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider, so call it
// after the provider is installed. Before that the otel no-op meter is used.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter(meterName)
		var err error
		m := &AppMetrics{}

		m.FeedRequestsTotal, err = meter.Int64Counter(
			"feed_requests_total",
			metric.WithDescription("Feed loads, labelled by source (live or demo)"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create feed_requests_total: %v", err)
		}

		m.FeedFallbackErrorsTotal, err = meter.Int64Counter(
			"feed_fallback_errors_total",
			metric.WithDescription("Feed loads that served demo profiles because the live query failed"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create feed_fallback_errors_total: %v", err)
		}

		m.DbQueryDurationSeconds, err = meter.Float64Histogram(
			"db_query_duration_seconds",
			metric.WithDescription("Duration of database queries in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_duration_seconds: %v", err)
		}

		m.DbQueryErrorsTotal, err = meter.Int64Counter(
			"db_query_errors_total",
			metric.WithDescription("Total number of database query errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create db_query_errors_total: %v", err)
		}

		m.SwipesTotal, err = meter.Int64Counter(
			"swipes_total",
			metric.WithDescription("Recorded swipes, labelled by direction and plan"),
			metric.WithUnit("{swipe}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create swipes_total: %v", err)
		}

		m.SwipeLimitHitsTotal, err = meter.Int64Counter(
			"swipe_limit_hits_total",
			metric.WithDescription("Swipes rejected because the daily free limit was reached"),
			metric.WithUnit("{swipe}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create swipe_limit_hits_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global AppMetrics, initializing it on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
