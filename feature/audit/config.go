package audit

import (
	"fmt"

	"inventory-auditor/core/ledger"
	"inventory-auditor/core/reconcile"
)

// Config holds configuration for the audit feature.
type Config struct {
	// FBAObject is the object name of the FBA ledger CSV.
	FBAObject string `mapstructure:"fba_object" default:"ledgers/fba.csv"`
	// StorefrontObject is the object name of the storefront ledger CSV.
	StorefrontObject string `mapstructure:"storefront_object" default:"ledgers/storefront.csv"`
	// ReportObject is the object name the audit report is written to.
	ReportObject string `mapstructure:"report_object" default:"reports/audit.csv"`

	// FBAKeyColumn is the identifier column of the FBA ledger.
	FBAKeyColumn string `mapstructure:"fba_key_column" default:"sku"`
	// FBAQuantityColumn is the quantity column of the FBA ledger.
	FBAQuantityColumn string `mapstructure:"fba_quantity_column" default:"quantity"`

	// StorefrontKeyColumn is the identifier column of the storefront ledger.
	StorefrontKeyColumn string `mapstructure:"storefront_key_column" default:"sku"`
	// StorefrontQuantityColumn is the quantity column of the storefront ledger.
	StorefrontQuantityColumn string `mapstructure:"storefront_quantity_column" default:"quantity"`

	// StorefrontTable, when set, reads the storefront ledger from this
	// database table instead of object storage. The column mappings
	// above then name table columns.
	StorefrontTable string `mapstructure:"storefront_table" default:""`

	// DuplicatePolicy decides how repeated identifiers within one source
	// combine: reject, last or sum.
	DuplicatePolicy string `mapstructure:"duplicate_policy" default:"reject"`

	// DisplayKey decides which raw spelling the report shows: storefront,
	// fba or normalized.
	DisplayKey string `mapstructure:"display_key" default:"storefront"`

	// CacheTTLSeconds is how long fetched ledgers are reused by preview
	// and summary calls. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// FBAColumns returns the column mapping of the FBA ledger.
func (c Config) FBAColumns() ledger.Columns {
	return ledger.Columns{Key: c.FBAKeyColumn, Quantity: c.FBAQuantityColumn}
}

// StorefrontColumns returns the column mapping of the storefront ledger.
func (c Config) StorefrontColumns() ledger.Columns {
	return ledger.Columns{Key: c.StorefrontKeyColumn, Quantity: c.StorefrontQuantityColumn}
}

// Options converts the configured policies into engine options.
func (c Config) Options() reconcile.Options {
	return reconcile.Options{
		Duplicates: reconcile.DuplicatePolicy(c.DuplicatePolicy),
		Display:    reconcile.DisplayPolicy(c.DisplayKey),
	}
}

// Validate checks the configured policies.
func (c Config) Validate() error {
	if !reconcile.DuplicatePolicy(c.DuplicatePolicy).Valid() {
		return fmt.Errorf("invalid duplicate_policy %q (want reject, last or sum)", c.DuplicatePolicy)
	}
	if !reconcile.DisplayPolicy(c.DisplayKey).Valid() {
		return fmt.Errorf("invalid display_key %q (want storefront, fba or normalized)", c.DisplayKey)
	}
	return nil
}
