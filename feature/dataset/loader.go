package dataset

import (
	"commerce-linker/core/generator"
	"commerce-linker/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature wires the dataset feature. db and client may be nil.
func NewFeature(cfg generator.Config, db *gorm.DB, client storage.Client, storageCfg storage.Config, logger *zap.Logger) *Feature {
	var repo *Repository
	if db != nil {
		repo = NewRepository(db)
	}
	var exporter *Exporter
	if client != nil {
		exporter = NewExporter(client, storageCfg.Bucket, storageCfg.Region, logger)
	}
	svc := NewService(cfg, repo, exporter, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service exposes the dataset service to other features.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dataset"
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
