// Package segments lets advertisers define audience segments and inspect
// their impressions.
//
// Reach is estimated from how many criteria a segment carries. Analytics
// are synthetic: a month of observed impressions is drawn around a fixed
// base, and the following month comes from the forecast client, which falls
// back to a trend extrapolation when the model is unavailable.
//
// # Endpoints
//
//   - POST /api/segments: create a segment
//   - GET /api/segments: latest segments
//   - GET /api/segments/:id/analytics: observed and predicted impressions
package segments
