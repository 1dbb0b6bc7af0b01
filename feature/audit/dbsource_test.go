package audit

import (
	"context"
	"testing"

	"inventory-auditor/core/ledger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func tableColumns(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "varchar(64)", "NO", "", nil, "")
	}
	return rows
}

func TestFetchTableLedger(t *testing.T) {
	cols := ledger.Columns{Key: "sku", Quantity: "quantity"}

	t.Run("Rows", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(tableColumns("sku", "quantity"))
		mock.ExpectQuery("SELECT `sku`, `quantity` FROM `stock_levels`").
			WillReturnRows(sqlmock.NewRows([]string{"sku", "quantity"}).
				AddRow("WIDGET-1", 10).
				AddRow("widget-2", int64(5)))

		records, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)
		require.NoError(t, err)

		require.Len(t, records, 2)
		assert.Equal(t, ledger.Record{Key: "WIDGET-1", Quantity: 10, Source: ledger.SourceStorefront}, records[0])
		assert.Equal(t, ledger.Record{Key: "widget-2", Quantity: 5, Source: ledger.SourceStorefront}, records[1])
	})

	t.Run("MissingColumn", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(tableColumns("sku", "warehouse"))

		_, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)
		require.Error(t, err)

		var malformed *ledger.MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, ledger.SourceStorefront, malformed.Source)
		assert.Equal(t, "quantity", malformed.Column)
	})

	t.Run("NonIntegerQuantity", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(tableColumns("sku", "quantity"))
		mock.ExpectQuery("SELECT `sku`, `quantity` FROM `stock_levels`").
			WillReturnRows(sqlmock.NewRows([]string{"sku", "quantity"}).
				AddRow("WIDGET-1", "lots"))

		_, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)
		require.Error(t, err)

		var malformed *ledger.MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, ledger.SourceStorefront, malformed.Source)
		assert.Equal(t, 1, malformed.Row)
		assert.Contains(t, malformed.Reason, `quantity "lots" is not an integer`)
	})

	t.Run("NullQuantity", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(tableColumns("sku", "quantity"))
		mock.ExpectQuery("SELECT `sku`, `quantity` FROM `stock_levels`").
			WillReturnRows(sqlmock.NewRows([]string{"sku", "quantity"}).
				AddRow("WIDGET-1", nil))

		_, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)

		var malformed *ledger.MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 1, malformed.Row)
	})

	t.Run("NullKey", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(tableColumns("sku", "quantity"))
		mock.ExpectQuery("SELECT `sku`, `quantity` FROM `stock_levels`").
			WillReturnRows(sqlmock.NewRows([]string{"sku", "quantity"}).
				AddRow("WIDGET-1", 10).
				AddRow(nil, 5))

		_, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)

		var malformed *ledger.MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 2, malformed.Row)
		assert.Contains(t, malformed.Reason, "identifier is NULL")
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(tableColumns("sku", "quantity"))
		mock.ExpectQuery("SELECT `sku`, `quantity` FROM `stock_levels`").
			WillReturnRows(sqlmock.NewRows([]string{"sku", "quantity"}).
				AddRow("WIDGET-1", -3))

		_, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)
		require.Error(t, err)

		var malformed *ledger.MalformedInputError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 1, malformed.Row)
		assert.Contains(t, malformed.Reason, "negative quantity")
	})

	t.Run("Empty", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(tableColumns("sku", "quantity"))
		mock.ExpectQuery("SELECT `sku`, `quantity` FROM `stock_levels`").
			WillReturnRows(sqlmock.NewRows([]string{"sku", "quantity"}))

		records, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnError(assert.AnError)

		_, err := fetchTableLedger(context.Background(), db, "stock_levels", cols)
		assert.Error(t, err)
	})
}
