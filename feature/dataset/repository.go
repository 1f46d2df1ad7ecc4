package dataset

import (
	"context"
	"fmt"
	"sync"

	"commerce-linker/core/database"
	"commerce-linker/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const batchSize = 500

// Repository persists generated populations in the bronze tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the bronze tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&models.Account{}, &models.Session{}); err != nil {
		return fmt.Errorf("failed to migrate dataset tables: %w", err)
	}
	return nil
}

// Save writes every account and session of ds in one transaction.
func (r *Repository) Save(ctx context.Context, ds *Dataset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ds.Accounts) > 0 {
			if err := tx.CreateInBatches(ds.Accounts, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert accounts: %w", err)
			}
		}
		if len(ds.Sessions) > 0 {
			if err := tx.CreateInBatches(ds.Sessions, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert sessions: %w", err)
			}
		}
		return nil
	})
}

// Counts returns the number of persisted accounts and sessions of a dataset.
func (r *Repository) Counts(ctx context.Context, datasetID string) (accounts, sessions int64, err error) {
	db := r.db.WithContext(ctx)
	if err = db.Model(&models.Account{}).Where("dataset_id = ?", datasetID).Count(&accounts).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	if err = db.Model(&models.Session{}).Where("dataset_id = ?", datasetID).Count(&sessions).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return accounts, sessions, nil
}

// InspectSchema compares the live bronze tables with the columns the models
// expect.
func (r *Repository) InspectSchema() ([]database.TableReport, error) {
	cache := &sync.Map{}
	var reports []database.TableReport
	for _, model := range []any{&models.Account{}, &models.Session{}} {
		s, err := schema.Parse(model, cache, r.db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model schema: %w", err)
		}
		report, err := database.InspectTable(r.db, s.Table, s.DBNames)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// TableStatus is a schema report with an overall verdict.
type TableStatus struct {
	database.TableReport
	OK bool `json:"ok"`
}
