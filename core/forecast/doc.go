// Package forecast predicts daily segment impressions.
//
// Client sends the segment criteria and recent history to an
// OpenAI-compatible chat completions endpoint and decodes the JSON array in
// the reply. Calls go through a circuit breaker; Forecast never fails and
// degrades to Fallback, a simple growth trend over the history mean.
package forecast
