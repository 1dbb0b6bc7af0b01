// Package integrity verifies that the audit's inputs are in place before
// a run is attempted.
//
// The checks cover the bucket layout (the ledgers/ and reports/ prefixes),
// the presence of the configured ledger objects, and, when a storefront
// table is configured, the table's required columns. Structure problems
// can optionally be repaired in place; everything else is report-only.
package integrity
