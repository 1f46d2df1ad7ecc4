package segments

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository stores segments in gold_segments.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the gold_segments table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Segment{}); err != nil {
		return fmt.Errorf("failed to migrate gold_segments: %w", err)
	}
	return nil
}

// Create inserts a segment.
func (r *Repository) Create(ctx context.Context, s *Segment) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to insert segment: %w", err)
	}
	return nil
}

// Latest returns the newest segments first.
func (r *Repository) Latest(ctx context.Context, limit int) ([]Segment, error) {
	var out []Segment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return out, nil
}

// Get returns one segment.
func (r *Repository) Get(ctx context.Context, id string) (*Segment, error) {
	var s Segment
	if err := r.db.WithContext(ctx).First(&s, "segment_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
