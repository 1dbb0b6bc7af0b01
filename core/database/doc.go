// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to properly configure MySQL
// connections based on the application's configuration. The connection is
// optional: it is only required when the storefront ledger is read from a
// database table instead of object storage.
//
// # Connect
//
// Connect establishes the connection with pooled settings, DSN-level
// timeouts and an initial ping, so a misconfigured database fails the
// startup path instead of the first audit run.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns verify that a configured ledger
// table actually carries the mapped identifier and quantity columns.
// The audit feature runs this check before querying, and the integrity
// feature exposes it as a preflight endpoint.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	missing, err := database.MissingColumns(db, "stock_levels", "sku", "quantity")
package database
