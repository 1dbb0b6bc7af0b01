package ledger

import "fmt"

// MalformedInputError reports invalid ledger input: a required column is
// missing, a quantity cell fails integer parsing or is negative, or an
// identifier recurs under the reject duplicate policy. The run aborts;
// no partial reconciliation is attempted.
type MalformedInputError struct {
	// Source is the ledger the problem was found in.
	Source Source

	// Column is the missing required column, when non-empty.
	Column string

	// Row is the 1-based data row index of the offending cell, when > 0.
	Row int

	// Key is the duplicated identifier, when non-empty.
	Key string

	// Reason describes the problem for row-level errors.
	Reason string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("%s ledger: missing required column %q", e.Source, e.Column)
	case e.Key != "":
		return fmt.Sprintf("%s ledger: duplicate identifier %q", e.Source, e.Key)
	case e.Row > 0:
		return fmt.Sprintf("%s ledger: row %d: %s", e.Source, e.Row, e.Reason)
	default:
		return fmt.Sprintf("%s ledger: %s", e.Source, e.Reason)
	}
}
