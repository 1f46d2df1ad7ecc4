package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GeneratedRecordsTotal counts synthetic rows by dataset (accounts, sessions).
	GeneratedRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_generated_records_total",
			Help: "Total number of synthetic records generated",
		},
		[]string{"dataset"},
	)

	// GenerationDuration tracks how long one population takes to build.
	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "commerce_generation_duration_seconds",
			Help:    "Duration of dataset generation in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"dataset"},
	)

	// MatchRunsTotal counts matcher executions by cache outcome.
	MatchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_match_runs_total",
			Help: "Total number of matcher runs",
		},
		[]string{"cache"},
	)

	// MatchesTotal counts emitted matches by pass type.
	MatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_matches_total",
			Help: "Total number of session to account matches",
		},
		[]string{"type"},
	)

	// MatchRunDuration tracks the wall time of a full three pass run.
	MatchRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "commerce_match_run_duration_seconds",
			Help:    "Duration of a matcher run in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
	)

	// ExportsTotal counts CSV exports by target and status.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_exports_total",
			Help: "Total number of dataset CSV exports",
		},
		[]string{"target", "status"},
	)

	// ForecastRequestsTotal counts forecasts by outcome (model, fallback, rejected).
	ForecastRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_forecast_requests_total",
			Help: "Total number of impression forecasts",
		},
		[]string{"outcome"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "commerce_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// CircuitBreakerTransitions counts state changes.
	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordGeneration records one generated population.
func RecordGeneration(dataset string, rows int, elapsed time.Duration) {
	GeneratedRecordsTotal.WithLabelValues(dataset).Add(float64(rows))
	GenerationDuration.WithLabelValues(dataset).Observe(elapsed.Seconds())
}

// RecordMatchRun records a completed matcher run and its per-type counts.
func RecordMatchRun(cached bool, counts map[string]int, elapsed time.Duration) {
	if cached {
		MatchRunsTotal.WithLabelValues("hit").Inc()
		return
	}
	MatchRunsTotal.WithLabelValues("miss").Inc()
	MatchRunDuration.Observe(elapsed.Seconds())
	for matchType, n := range counts {
		MatchesTotal.WithLabelValues(matchType).Add(float64(n))
	}
}

// RecordExport records one CSV export attempt.
func RecordExport(target string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	ExportsTotal.WithLabelValues(target, status).Inc()
}
