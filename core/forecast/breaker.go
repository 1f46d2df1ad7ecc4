package forecast

import (
	"time"

	"commerce-linker/core/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const breakerName = "forecast-api"

// tripPolicy decides when the breaker opens.
type tripPolicy func(counts gobreaker.Counts) bool

// defaultTrip opens at a 60% failure rate once 10 requests were seen.
func defaultTrip(counts gobreaker.Counts) bool {
	if counts.Requests < 10 {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
}

func newBreaker(trip tripPolicy, cooldown time.Duration, log *zap.Logger) *gobreaker.CircuitBreaker[[]int] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[[]int](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if !trip(counts) {
				return false
			}
			log.Warn("Opening forecast circuit",
				zap.Uint32("requests", counts.Requests),
				zap.Uint32("failures", counts.TotalFailures))
			return true
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info("Forecast circuit state change",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
