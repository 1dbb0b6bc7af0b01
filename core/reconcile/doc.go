// Package reconcile merges two inventory ledgers into a single audit
// report classifying every product identifier by agreement status.
//
// The engine performs a full outer join on normalized keys: a key present
// in only one ledger yields a row with the other quantity slot absent; a
// key present in both yields both quantities. The output row set covers
// exactly the union of normalized keys across both inputs, with no
// duplicates and no omissions, sorted ascending by normalized key so runs
// over the same inputs are byte-identical and diffable.
//
// # Components
//
// 1. Engine: Reconcile folds both record sequences into a keyed map,
// applying the configured duplicate policy, and produces one Row per
// distinct normalized key.
//
// 2. Classifier: Classify assigns exactly one Status per row from the
// pair of optional quantities. A row with one side absent is always a
// missing status, never a mismatch.
//
// 3. Emitter: EncodeReport serializes the classified rows into the CSV
// audit report with a fixed column order, blank cells for absent
// quantities, and a SerializationError guard for unset statuses.
//
// # Purity
//
// The package performs no I/O, holds no shared state and never logs; a
// reconciliation is a pure function from two in-memory sequences to one
// output sequence. Concurrent runs over independent inputs are safe.
//
// # Usage Example
//
//	rows, err := reconcile.Reconcile(fbaRecords, storefrontRecords, reconcile.Options{})
//	report, err := reconcile.EncodeReport(rows)
//
//	// Or in one call when only the bytes matter:
//	report, err := reconcile.Report(fbaRecords, storefrontRecords, reconcile.Options{})
package reconcile
