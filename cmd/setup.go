package cmd

import (
	"fmt"

	"commerce-linker/core/config"
	"commerce-linker/core/database"
	"commerce-linker/core/storage"
	"commerce-linker/feature/dataset"
	"commerce-linker/feature/matching"
	"commerce-linker/feature/segments"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// migrate creates every table the features write to.
func migrate(db *gorm.DB) error {
	if err := dataset.NewRepository(db).Migrate(); err != nil {
		return err
	}
	if err := matching.NewRepository(db).Migrate(); err != nil {
		return err
	}
	return segments.NewRepository(db).Migrate()
}

// openDatabase connects and migrates the configured database.
func openDatabase(cfg database.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// newDatasetService builds a dataset service for CLI use. The database and
// object store are only opened when the caller needs them.
func newDatasetService(cfg *config.Config, persist, upload bool, l *zap.Logger) (*dataset.Service, *gorm.DB, error) {
	var (
		db   *gorm.DB
		repo *dataset.Repository
	)
	if persist {
		conn, err := openDatabase(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		db = conn
		repo = dataset.NewRepository(db)
	}

	var exporter *dataset.Exporter
	if upload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		exporter = dataset.NewExporter(client, cfg.Storage.Bucket, cfg.Storage.Region, l)
	}

	return dataset.NewService(cfg.Generator, repo, exporter, l), db, nil
}
