// Package matching exposes the session to account matcher over HTTP.
//
// Runs use the latest dataset of the dataset feature and are cached per
// dataset id; a fresh (uncached) run is summarised into match_runs when a
// database is configured.
package matching
