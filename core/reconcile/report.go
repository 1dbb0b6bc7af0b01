package reconcile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"inventory-auditor/core/ledger"
)

// reportHeader is the fixed column order of the audit report.
var reportHeader = []string{"identifier", "fba_quantity", "storefront_quantity", "status"}

// SerializationError reports a row that reached the emitter without a
// status. It signals a defect in classification, not bad input, and is
// unreachable through the public pipeline.
type SerializationError struct {
	// Key is the normalized key of the offending row.
	Key string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("report row %q has no status", e.Key)
}

// EncodeReport serializes classified rows into the audit report CSV.
// Absent quantities become blank cells. The report is produced atomically:
// either the full byte slice is returned or nothing is.
func EncodeReport(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range rows {
		if row.Status == "" {
			return nil, &SerializationError{Key: row.Key}
		}
		record := []string{
			row.DisplayKey,
			formatQuantity(row.FBAQuantity),
			formatQuantity(row.StorefrontQuantity),
			string(row.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write report row %q: %w", row.Key, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}

	return buf.Bytes(), nil
}

// Report reconciles both ledgers and serializes the result in one call.
// This is the single entry point for callers that only need report bytes.
func Report(fba, storefront []ledger.Record, opts Options) ([]byte, error) {
	rows, err := Reconcile(fba, storefront, opts)
	if err != nil {
		return nil, err
	}
	return EncodeReport(rows)
}

func formatQuantity(q *int) string {
	if q == nil {
		return ""
	}
	return strconv.Itoa(*q)
}
