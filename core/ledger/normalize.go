package ledger

import "strings"

// NormalizeKey canonicalizes a product identifier for matching across
// sources: leading and trailing whitespace is trimmed, then the result is
// upper-cased with the locale-independent Unicode mapping. Two raw keys
// that normalize identically are the same product for reconciliation.
// Idempotent: NormalizeKey(NormalizeKey(x)) == NormalizeKey(x).
func NormalizeKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// TrimKey strips surrounding whitespace from an identifier while keeping
// its original casing. Used for display, never for matching.
func TrimKey(raw string) string {
	return strings.TrimSpace(raw)
}
