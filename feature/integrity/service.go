package integrity

import (
	"context"
	"fmt"

	"inventory-auditor/core/database"
	"inventory-auditor/core/storage"
	"inventory-auditor/feature/audit"
	"inventory-auditor/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	db       *gorm.DB
	auditCfg audit.Config
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, auditCfg audit.Config) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		logger:   logger,
		db:       db,
		auditCfg: auditCfg,
	}
}

// CheckStructure returns a list of missing bucket prefixes.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckLedgers returns the configured ledger objects missing from the bucket.
// The storefront object is only expected when no table source is configured.
func (s *Service) CheckLedgers(ctx context.Context) ([]string, error) {
	objects := []string{s.auditCfg.FBAObject}
	if s.auditCfg.StorefrontTable == "" {
		objects = append(objects, s.auditCfg.StorefrontObject)
	}
	return checks.CheckLedgers(ctx, s.client, s.bucket, objects)
}

// CheckTable verifies the storefront table carries the required columns.
// Returns the missing column names, empty when no table is configured.
func (s *Service) CheckTable(ctx context.Context) ([]string, error) {
	if s.auditCfg.StorefrontTable == "" {
		return nil, nil
	}
	if s.db == nil {
		return nil, fmt.Errorf("storefront_table %q configured but database is not connected", s.auditCfg.StorefrontTable)
	}

	cols := s.auditCfg.StorefrontColumns()
	return database.MissingColumns(s.db.WithContext(ctx), s.auditCfg.StorefrontTable, cols.Key, cols.Quantity)
}
