package reconcile

import (
	"sort"

	"inventory-auditor/core/ledger"
)

// slot accumulates per-source state for one normalized key during folding.
type slot struct {
	fbaQty *int
	sfQty  *int
	fbaRaw string
	sfRaw  string
}

// Reconcile performs a full outer join of the two ledgers on normalized
// keys and classifies every resulting row. The output covers exactly the
// union of normalized keys across both inputs, sorted ascending by
// normalized key, so identical inputs produce identical output in any
// input ordering.
func Reconcile(fba, storefront []ledger.Record, opts Options) ([]Row, error) {
	if opts.Duplicates == "" {
		opts.Duplicates = DuplicateReject
	}
	if opts.Display == "" {
		opts.Display = DisplayStorefront
	}

	slots := make(map[string]*slot)

	if err := fold(slots, fba, ledger.SourceFBA, opts.Duplicates); err != nil {
		return nil, err
	}
	if err := fold(slots, storefront, ledger.SourceStorefront, opts.Duplicates); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(slots))
	for key := range slots {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		s := slots[key]
		rows = append(rows, Row{
			Key:                key,
			DisplayKey:         displayKey(key, s, opts.Display),
			FBAQuantity:        s.fbaQty,
			StorefrontQuantity: s.sfQty,
			Status:             Classify(s.fbaQty, s.sfQty),
		})
	}

	return rows, nil
}

// fold merges one source's records into the slot map. The source argument
// names the side being folded; a key recurring within the same source is
// resolved by the duplicate policy.
func fold(slots map[string]*slot, records []ledger.Record, source ledger.Source, policy DuplicatePolicy) error {
	for _, rec := range records {
		key := ledger.NormalizeKey(rec.Key)
		s, ok := slots[key]
		if !ok {
			s = &slot{}
			slots[key] = s
		}

		qty := rec.Quantity
		raw := ledger.TrimKey(rec.Key)

		switch source {
		case ledger.SourceFBA:
			if s.fbaQty != nil {
				switch policy {
				case DuplicateReject:
					return &ledger.MalformedInputError{Source: source, Key: key}
				case DuplicateSum:
					qty += *s.fbaQty
				}
			}
			s.fbaQty = &qty
			s.fbaRaw = raw
		case ledger.SourceStorefront:
			if s.sfQty != nil {
				switch policy {
				case DuplicateReject:
					return &ledger.MalformedInputError{Source: source, Key: key}
				case DuplicateSum:
					qty += *s.sfQty
				}
			}
			s.sfQty = &qty
			s.sfRaw = raw
		}
	}
	return nil
}

// displayKey picks the spelling the report shows, falling back to the
// side that is present when the preferred side is absent.
func displayKey(key string, s *slot, policy DisplayPolicy) string {
	switch policy {
	case DisplayFBA:
		if s.fbaQty != nil {
			return s.fbaRaw
		}
		return s.sfRaw
	case DisplayNormalized:
		return key
	default:
		if s.sfQty != nil {
			return s.sfRaw
		}
		return s.fbaRaw
	}
}
