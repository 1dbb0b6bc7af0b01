package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load parses a CSV ledger into an ordered sequence of records.
// The first row must be a header containing the configured identifier and
// quantity columns; extra columns are ignored. Duplicate identifiers are
// kept as separate records.
func Load(r io.Reader, cols Columns, source Source) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MalformedInputError{Source: source, Column: cols.Key}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s ledger header: %w", source, err)
	}

	keyIdx, qtyIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case cols.Key:
			keyIdx = i
		case cols.Quantity:
			qtyIdx = i
		}
	}
	if keyIdx < 0 {
		return nil, &MalformedInputError{Source: source, Column: cols.Key}
	}
	if qtyIdx < 0 {
		return nil, &MalformedInputError{Source: source, Column: cols.Quantity}
	}

	var records []Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, &MalformedInputError{
					Source: source,
					Row:    row,
					Reason: "wrong number of fields",
				}
			}
			return nil, fmt.Errorf("failed to read %s ledger row %d: %w", source, row, err)
		}

		raw := strings.TrimSpace(fields[qtyIdx])
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &MalformedInputError{
				Source: source,
				Row:    row,
				Reason: fmt.Sprintf("quantity %q is not an integer", raw),
			}
		}
		if qty < 0 {
			return nil, &MalformedInputError{
				Source: source,
				Row:    row,
				Reason: fmt.Sprintf("quantity %d is negative", qty),
			}
		}

		records = append(records, Record{
			Key:      fields[keyIdx],
			Quantity: qty,
			Source:   source,
		})
	}

	return records, nil
}
