package segments

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature wires the segments feature. db may be nil.
func NewFeature(db *gorm.DB, forecaster Forecaster, cacheTTL time.Duration, logger *zap.Logger) *Feature {
	var repo *Repository
	if db != nil {
		repo = NewRepository(db)
	}
	svc := NewService(repo, forecaster, cacheTTL, logger)
	return &Feature{handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "segments"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
