package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:     "localhost",
			Port:     9999, // Unused port
			User:     "root",
			Password: "wrongpassword",
			Name:     "storefront",
		}

		// Connect should fail (timeout or refused); we expect an error.
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	// A successful connection needs a real database; the error path
	// covers graceful failure.
}

// setupMockDB creates a mock GORM DB for inspector tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows(fields ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	for _, f := range fields {
		rows.AddRow(f, "varchar(64)", "NO", "", nil, "")
	}
	return rows
}

func TestMissingColumns(t *testing.T) {
	t.Run("AllPresent", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(columnRows("sku", "quantity", "updated_at"))

		missing, err := MissingColumns(db, "stock_levels", "sku", "quantity")
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(columnRows("SKU", "Quantity"))

		missing, err := MissingColumns(db, "stock_levels", "sku", "quantity")
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("MissingQuantity", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(columnRows("sku", "warehouse"))

		missing, err := MissingColumns(db, "stock_levels", "sku", "quantity")
		require.NoError(t, err)
		assert.Equal(t, []string{"quantity"}, missing)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `missing_table`").
			WillReturnError(assert.AnError)

		_, err := MissingColumns(db, "missing_table", "sku")
		assert.Error(t, err)
	})
}
