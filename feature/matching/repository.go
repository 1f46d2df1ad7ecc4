package matching

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository stores matcher run summaries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the match_runs table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&MatchRun{}); err != nil {
		return fmt.Errorf("failed to migrate match_runs: %w", err)
	}
	return nil
}

// Save inserts one run summary.
func (r *Repository) Save(ctx context.Context, run *MatchRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save match run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]MatchRun, error) {
	var runs []MatchRun
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list match runs: %w", err)
	}
	return runs, nil
}
