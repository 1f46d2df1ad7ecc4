// Package config loads the commerce-linker settings.
//
// Values come from the environment, optionally seeded by a .env file. Every
// key is declared by a mapstructure tag with its default next to it, and
// nested keys map to upper-case variables joined by underscores
// (matching.revenue_tolerance is MATCHING_REVENUE_TOLERANCE).
//
// # Configuration Structure
//
//   - Server: port, API key, body limit
//   - Database: MySQL or SQLite connection
//   - Storage: MinIO bucket for CSV exports
//   - Log: level and encoding
//   - Generator: population caps, default sizes, seed
//   - Matching: revenue tolerance, timing window, result cache TTL
//   - Forecast: chat completions endpoint for segment predictions
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Generator.MaxSessions)
package config
