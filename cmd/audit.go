package cmd

import (
	"context"
	"fmt"
	"os"

	"inventory-auditor/core/config"
	"inventory-auditor/core/database"
	"inventory-auditor/core/logger"
	"inventory-auditor/core/reconcile"
	"inventory-auditor/core/storage"
	"inventory-auditor/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the audit command
	auditDryRun bool
	auditOutput string
)

// auditCmd performs a one-shot reconciliation run from the command line.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run a ledger reconciliation audit",
	Long: `Reconcile the FBA ledger against the storefront ledger and write the
CSV audit report.

By default the report is uploaded to the configured report object.
Use --output to also write it to a local file, or --dry-run to skip
writing entirely and only print the summary.

Examples:
  # Full run, upload the report
  inventory-auditor audit

  # Summary only, nothing written
  inventory-auditor audit --dry-run

  # Upload and keep a local copy
  inventory-auditor audit --output audit.csv`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&auditDryRun, "dry-run", false, "Reconcile and print the summary without writing a report")
	auditCmd.Flags().StringVar(&auditOutput, "output", "", "Also write the report to a local file")

	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting ledger audit")

	// Connect to database only when the storefront side needs it
	var db *gorm.DB
	if cfg.Audit.StorefrontTable != "" {
		db, err = database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	// Connect to storage
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := audit.NewService(client, cfg.Storage.Bucket, l, db, cfg.Audit)

	if auditDryRun {
		summary, err := svc.Summary(ctx)
		if err != nil {
			return fmt.Errorf("failed to reconcile ledgers: %w", err)
		}
		printAuditSummary(l, summary)
		l.Info("Dry-run mode: No report was written.")
		return nil
	}

	result, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to run audit: %w", err)
	}

	printAuditSummary(l, result.Summary)
	l.Info("Report uploaded",
		zap.String("report_object", result.ReportObject),
		zap.Int("report_bytes", result.ReportBytes),
	)

	if auditOutput != "" {
		// Write the exact bytes that were uploaded; re-reconciling here
		// could diverge if a ledger changed mid-command.
		if err := os.WriteFile(auditOutput, result.Report, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", auditOutput, err)
		}
		l.Info("Report written locally", zap.String("path", auditOutput))
	}

	return nil
}

// printAuditSummary prints a formatted audit summary using logger.
func printAuditSummary(l *zap.Logger, s reconcile.Summary) {
	l.Info("Audit report",
		zap.Int("total_keys", s.TotalKeys),
		zap.Int("matches", s.Matches),
		zap.Int("mismatches", s.Mismatches),
		zap.Int("missing_in_fba", s.MissingInFBA),
		zap.Int("missing_in_storefront", s.MissingInStorefront),
	)
}
