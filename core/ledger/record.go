package ledger

// Source identifies which ledger a record came from.
type Source string

const (
	// SourceFBA is the fulfillment-center ledger.
	SourceFBA Source = "fba"
	// SourceStorefront is the sales-channel ledger.
	SourceStorefront Source = "storefront"
)

// Record is a single inventory line from one ledger.
// Quantity is always >= 0; an unknown quantity is represented by the
// record being absent from its source, never by a sentinel value.
type Record struct {
	// Key is the product identifier exactly as it appeared upstream.
	Key string `json:"key"`

	// Quantity is the on-hand quantity reported by the source.
	Quantity int `json:"quantity"`

	// Source is the ledger this record belongs to.
	Source Source `json:"source"`
}

// Columns maps a source's header names to the required fields.
type Columns struct {
	// Key is the header of the product-identifier column.
	Key string

	// Quantity is the header of the quantity column.
	Quantity string
}
