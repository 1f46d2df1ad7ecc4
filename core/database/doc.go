// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either MySQL (production) or SQLite (local runs and
// tests) depending on Config.Driver.
//
// # Connect
//
// Connect opens the database, sizes the pool and pings it within the
// configured timeout. Persistence is optional everywhere in the application:
// when Connect fails the services keep working in memory.
//
// # Schema Inspection
//
// GetTableColumns and InspectTable read the live column list (SHOW COLUMNS on
// MySQL, PRAGMA table_info on SQLite) so the dataset feature can report tables
// that drifted from the expected models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("running without persistence", zap.Error(err))
//	}
//
//	report, err := database.InspectTable(db, "customer_accounts", []string{"customer_id"})
package database
