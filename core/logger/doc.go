// Package logger builds the zap loggers used across commerce-linker.
//
// New honours the configured level and encoding; debug level switches to
// the development preset. NewConsole is the human readable logger used by
// the CLI commands.
//
// WithRayID attaches the request's ray id to a logger so every line written
// while serving a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
