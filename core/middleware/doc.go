// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key or Bearer token). Health and
//     swagger routes can be left public.
//   - rayid: assigns every request a ray id, stored in the context locals
//     and echoed in the X-Ray-ID response header for log correlation.
package middleware
