// Package metrics exposes Prometheus collectors for generation, matching,
// exports and the forecast circuit breaker.
//
// Collectors are registered with the default registry through promauto and
// served by the start command on /metrics.
package metrics
