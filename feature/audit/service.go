package audit

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"inventory-auditor/core/ledger"
	"inventory-auditor/core/reconcile"
	"inventory-auditor/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Service runs reconciliation audits over the configured ledgers.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	cfg    Config
	cache  *ledgerCache
}

// NewService creates a new audit service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		cfg:    cfg,
		cache:  newLedgerCache(time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}
}

// Result summarizes one completed audit run.
type Result struct {
	// Summary counts the report rows by status.
	Summary reconcile.Summary `json:"summary"`

	// ReportObject is where the report was written.
	ReportObject string `json:"report_object"`

	// ReportBytes is the size of the uploaded report.
	ReportBytes int `json:"report_bytes"`

	// Report is the uploaded report content, for callers that want to
	// keep a local copy of exactly what was written. Not serialized.
	Report []byte `json:"-"`
}

// Run executes a full audit: fetch both ledgers, reconcile, upload the
// CSV report and return the summary. Ledgers are always fetched fresh
// and the read cache is invalidated afterwards.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	snap, err := s.fetchLedgers(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := reconcile.Reconcile(snap.fba, snap.storefront, s.cfg.Options())
	if err != nil {
		return nil, err
	}

	data, err := reconcile.EncodeReport(rows)
	if err != nil {
		return nil, err
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.cfg.ReportObject,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	if err != nil {
		return nil, fmt.Errorf("failed to upload report %s: %w", s.cfg.ReportObject, err)
	}

	s.cache.invalidate()

	s.logger.Info("Audit run complete",
		zap.Int("total_keys", len(rows)),
		zap.String("report_object", s.cfg.ReportObject),
		zap.Int("report_bytes", len(data)))

	return &Result{
		Summary:      reconcile.BuildSummary(rows),
		ReportObject: s.cfg.ReportObject,
		ReportBytes:  len(data),
		Report:       data,
	}, nil
}

// Preview reconciles the current ledgers without writing a report.
// Reads share the TTL cache when one is configured.
func (s *Service) Preview(ctx context.Context) ([]reconcile.Row, error) {
	snap, err := s.cache.get(ctx, s.fetchLedgers)
	if err != nil {
		return nil, err
	}
	return reconcile.Reconcile(snap.fba, snap.storefront, s.cfg.Options())
}

// Summary reconciles the current ledgers and returns the counts only.
func (s *Service) Summary(ctx context.Context) (reconcile.Summary, error) {
	rows, err := s.Preview(ctx)
	if err != nil {
		return reconcile.Summary{}, err
	}
	return reconcile.BuildSummary(rows), nil
}

// fetchLedgers materializes both sides concurrently.
func (s *Service) fetchLedgers(ctx context.Context) (*ledgers, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s not found", s.bucket)
	}

	var snap ledgers
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := s.fetchObjectLedger(gctx, s.cfg.FBAObject, s.cfg.FBAColumns(), ledger.SourceFBA)
		if err != nil {
			return err
		}
		snap.fba = records
		return nil
	})

	g.Go(func() error {
		var (
			records []ledger.Record
			err     error
		)
		if s.cfg.StorefrontTable != "" {
			if s.db == nil {
				return fmt.Errorf("storefront_table %q configured but database is not connected", s.cfg.StorefrontTable)
			}
			records, err = fetchTableLedger(gctx, s.db, s.cfg.StorefrontTable, s.cfg.StorefrontColumns())
		} else {
			records, err = s.fetchObjectLedger(gctx, s.cfg.StorefrontObject, s.cfg.StorefrontColumns(), ledger.SourceStorefront)
		}
		if err != nil {
			return err
		}
		snap.storefront = records
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *Service) fetchObjectLedger(ctx context.Context, object string, cols ledger.Columns, source ledger.Source) ([]ledger.Record, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s ledger %s: %w", source, object, err)
	}
	defer reader.Close()

	return ledger.Load(reader, cols, source)
}
