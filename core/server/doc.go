// Package server holds the HTTP server settings.
//
// The values are loaded by core/config and consumed by the start command when
// building the Fiber application (listen port, body limit, API key for the
// auth middleware and the service name reported by /health).
package server
