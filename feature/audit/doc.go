// Package audit orchestrates reconciliation runs over the two inventory
// ledgers and exposes them over HTTP.
//
// The package is infrastructure around the pure core: it fetches the FBA
// and storefront ledgers (CSV objects in storage, or optionally a MySQL
// table for the storefront side), hands the materialized records to
// core/reconcile, and persists the resulting audit report back to object
// storage. All deadlines, retries and credentials live out here; the core
// never performs I/O.
//
// # Endpoints
//
//   - POST /audit/run: full run, uploads the report, returns the summary.
//   - GET /audit/preview: reconciles without writing, returns the rows.
//   - GET /audit/summary: reconciles without writing, returns counts only.
//
// # Caching
//
// Preview and summary calls share a TTL ledger cache (disabled by
// default) so repeated reads do not hammer the ledger sources. A run
// always fetches fresh ledgers and invalidates the cache afterwards.
package audit
