package matching

import (
	"commerce-linker/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the matching feature over a dataset source. db may be nil.
func NewFeature(cfg reconcile.Config, datasets DatasetSource, db *gorm.DB, logger *zap.Logger) *Feature {
	var repo *Repository
	if db != nil {
		repo = NewRepository(db)
	}
	svc := NewService(datasets, reconcile.NewEngine(cfg), reconcile.NewResultCache(cfg.CacheTTL()), repo, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service exposes the matching service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "matching"
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
