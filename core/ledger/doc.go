// Package ledger defines inventory ledger records and loads them from
// tabular sources.
//
// A ledger is an ordered sequence of Record values, one per input line,
// each carrying the raw product identifier, a non-negative quantity and
// the Source it came from. Records are immutable after loading.
//
// # Loading
//
// Load parses a CSV byte stream using a caller-supplied column mapping
// (the identifier and quantity header names are configuration, never
// hardcoded). Duplicate identifiers within one source are preserved as
// separate records; deciding how they combine is the reconcile engine's
// job, not the loader's.
//
// # Normalization
//
// NormalizeKey produces the canonical form of an identifier used for
// matching across sources: trimmed and upper-cased with the
// locale-independent mapping. It is idempotent.
//
// # Errors
//
// All input problems are reported as *MalformedInputError naming the
// missing column, the offending row index, or the duplicated key. The
// package never logs; callers decide how to surface failures.
package ledger
