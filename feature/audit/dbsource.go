package audit

import (
	"context"
	"fmt"

	"inventory-auditor/core/database"
	"inventory-auditor/core/ledger"
	"inventory-auditor/core/utils"

	"gorm.io/gorm"
)

// fetchTableLedger reads the storefront ledger from a database table.
// The table stands in for the CSV object: the configured key and
// quantity columns name table columns, and the rows get the same
// validation the CSV loader applies.
func fetchTableLedger(ctx context.Context, db *gorm.DB, table string, cols ledger.Columns) ([]ledger.Record, error) {
	missing, err := database.MissingColumns(db.WithContext(ctx), table, cols.Key, cols.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	if len(missing) > 0 {
		return nil, &ledger.MalformedInputError{
			Source: ledger.SourceStorefront,
			Column: missing[0],
		}
	}

	var rows []map[string]any
	query := fmt.Sprintf("SELECT `%s`, `%s` FROM `%s`", cols.Key, cols.Quantity, table)
	if err := db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}

	records := make([]ledger.Record, 0, len(rows))
	for i, row := range rows {
		if row[cols.Key] == nil {
			return nil, &ledger.MalformedInputError{
				Source: ledger.SourceStorefront,
				Row:    i + 1,
				Reason: "identifier is NULL",
			}
		}
		qty, err := utils.ToInt(row[cols.Quantity])
		if err != nil {
			return nil, &ledger.MalformedInputError{
				Source: ledger.SourceStorefront,
				Row:    i + 1,
				Reason: fmt.Sprintf("quantity %q is not an integer", utils.ToString(row[cols.Quantity])),
			}
		}
		if qty < 0 {
			return nil, &ledger.MalformedInputError{
				Source: ledger.SourceStorefront,
				Row:    i + 1,
				Reason: fmt.Sprintf("negative quantity %d", qty),
			}
		}
		records = append(records, ledger.Record{
			Key:      utils.ToString(row[cols.Key]),
			Quantity: qty,
			Source:   ledger.SourceStorefront,
		})
	}
	return records, nil
}
