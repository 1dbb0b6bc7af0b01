package integrity

import (
	"inventory-auditor/core/storage"
	"inventory-auditor/feature/audit"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the integrity checks into the feature loader.
type Feature struct {
	service *Service
}

// NewFeature creates the integrity feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, auditCfg audit.Config) *Feature {
	return &Feature{service: NewService(client, bucket, logger, db, auditCfg)}
}

// Name returns the unique feature name.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled reports whether the feature should be loaded.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the integrity routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}
