package reconcile

// Status classifies the agreement between the two ledgers for one key.
// Statuses are mutually exclusive; every row carries exactly one.
type Status string

const (
	// StatusMatch means both ledgers report the same quantity.
	StatusMatch Status = "Match"
	// StatusMismatch means both ledgers carry the key but disagree on quantity.
	StatusMismatch Status = "Mismatch"
	// StatusMissingInFBA means only the storefront ledger carries the key.
	StatusMissingInFBA Status = "MissingInFBA"
	// StatusMissingInStorefront means only the FBA ledger carries the key.
	StatusMissingInStorefront Status = "MissingInStorefront"
)

// DuplicatePolicy decides how repeated identifiers within one source combine.
type DuplicatePolicy string

const (
	// DuplicateReject aborts the run with a MalformedInputError naming the key.
	DuplicateReject DuplicatePolicy = "reject"
	// DuplicateLastWins keeps the last record seen for the key.
	DuplicateLastWins DuplicatePolicy = "last"
	// DuplicateSum adds the quantities of all records for the key.
	DuplicateSum DuplicatePolicy = "sum"
)

// Valid reports whether the policy is one of the supported values.
func (p DuplicatePolicy) Valid() bool {
	switch p {
	case DuplicateReject, DuplicateLastWins, DuplicateSum:
		return true
	default:
		return false
	}
}

// DisplayPolicy decides which raw spelling the report shows when the two
// sources disagree on the original casing of a key. Matching and sort
// order always use the normalized key regardless of this policy.
type DisplayPolicy string

const (
	// DisplayStorefront prefers the storefront ledger's raw spelling.
	DisplayStorefront DisplayPolicy = "storefront"
	// DisplayFBA prefers the FBA ledger's raw spelling.
	DisplayFBA DisplayPolicy = "fba"
	// DisplayNormalized always shows the normalized key.
	DisplayNormalized DisplayPolicy = "normalized"
)

// Valid reports whether the policy is one of the supported values.
func (p DisplayPolicy) Valid() bool {
	switch p {
	case DisplayStorefront, DisplayFBA, DisplayNormalized:
		return true
	default:
		return false
	}
}

// Options controls duplicate resolution and display spelling for a run.
// The zero value means reject duplicates and prefer the storefront spelling.
type Options struct {
	// Duplicates is the duplicate-resolution policy within a single source.
	Duplicates DuplicatePolicy

	// Display is the raw-spelling preference for the report.
	Display DisplayPolicy
}

// Row is the reconciled output for a single normalized key.
// Rows are created by the engine, classified exactly once and immutable
// thereafter.
type Row struct {
	// Key is the normalized product identifier; rows sort by it.
	Key string `json:"key"`

	// DisplayKey is the raw spelling chosen by the display policy.
	DisplayKey string `json:"display_key"`

	// FBAQuantity is the fulfillment-center quantity, nil when the key
	// is absent from the FBA ledger.
	FBAQuantity *int `json:"fba_quantity"`

	// StorefrontQuantity is the storefront quantity, nil when the key is
	// absent from the storefront ledger.
	StorefrontQuantity *int `json:"storefront_quantity"`

	// Status is the agreement classification for this key.
	Status Status `json:"status"`
}

// Summary provides aggregate counts over a reconciled row set.
type Summary struct {
	// TotalKeys is the number of distinct normalized keys.
	TotalKeys int `json:"total_keys"`

	// Matches counts keys where both ledgers agree.
	Matches int `json:"matches"`

	// Mismatches counts keys present in both ledgers with differing quantities.
	Mismatches int `json:"mismatches"`

	// MissingInFBA counts keys absent from the FBA ledger.
	MissingInFBA int `json:"missing_in_fba"`

	// MissingInStorefront counts keys absent from the storefront ledger.
	MissingInStorefront int `json:"missing_in_storefront"`
}

// BuildSummary counts statuses across a reconciled row set.
func BuildSummary(rows []Row) Summary {
	summary := Summary{TotalKeys: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case StatusMatch:
			summary.Matches++
		case StatusMismatch:
			summary.Mismatches++
		case StatusMissingInFBA:
			summary.MissingInFBA++
		case StatusMissingInStorefront:
			summary.MissingInStorefront++
		}
	}
	return summary
}
