package audit

import (
	"inventory-auditor/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the audit service into the feature loader.
type Feature struct {
	service *Service
}

// NewFeature creates the audit feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config) *Feature {
	return &Feature{service: NewService(client, bucket, logger, db, cfg)}
}

// Name returns the unique feature name.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled reports whether the feature should be loaded. The audit
// feature is the point of the service and is always on.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the audit routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for command-line use.
func (f *Feature) Service() *Service {
	return f.service
}
