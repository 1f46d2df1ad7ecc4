// Package rng wraps a seedable ChaCha8 source with the draws the generators
// need: inclusive int ranges, uniform floats, weighted buckets, sampling
// without replacement and UUIDs.
//
// Identical seeds yield identical populations, including ids.
package rng
