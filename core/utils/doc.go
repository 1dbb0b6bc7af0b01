// Package utils provides common utility functions for the inventory auditor.
// It includes helper functions for the loose type conversions needed when
// scanning database rows into ledger records.
package utils
