package reconcile

// Classify assigns exactly one status to a pair of optional quantities.
// Missing takes precedence over mismatch: a key absent from one side is
// never classified StatusMismatch. Pure function, no side effects.
func Classify(fbaQty, storefrontQty *int) Status {
	switch {
	case storefrontQty == nil:
		return StatusMissingInStorefront
	case fbaQty == nil:
		return StatusMissingInFBA
	case *fbaQty == *storefrontQty:
		return StatusMatch
	default:
		return StatusMismatch
	}
}
