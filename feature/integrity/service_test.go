package integrity

import (
	"context"
	"testing"

	"inventory-auditor/core/storage/mocks"
	"inventory-auditor/feature/audit"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func auditConfig() audit.Config {
	return audit.Config{
		FBAObject:                "ledgers/fba.csv",
		StorefrontObject:         "ledgers/storefront.csv",
		StorefrontKeyColumn:      "sku",
		StorefrontQuantityColumn: "quantity",
	}
}

func emptyChannel() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestCheckLedgersObjectSelection(t *testing.T) {
	t.Run("Both Objects", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "inventory").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "inventory", mock.Anything).Return(emptyChannel())

		svc := NewService(mockClient, "inventory", zap.NewNop(), nil, auditConfig())

		missing, err := svc.CheckLedgers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"ledgers/fba.csv", "ledgers/storefront.csv"}, missing)
	})

	t.Run("Table Source Skips Storefront Object", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "inventory").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "inventory", mock.Anything).Return(emptyChannel())

		cfg := auditConfig()
		cfg.StorefrontTable = "stock_levels"

		svc := NewService(mockClient, "inventory", zap.NewNop(), nil, cfg)

		missing, err := svc.CheckLedgers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"ledgers/fba.csv"}, missing)
	})
}

func TestCheckTable(t *testing.T) {
	newMockDB := func(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
		t.Helper()

		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)

		gormDB, err := gorm.Open(mysql.New(mysql.Config{
			Conn:                      db,
			SkipInitializeWithVersion: true,
		}), &gorm.Config{})
		require.NoError(t, err)

		return gormDB, sqlMock
	}

	t.Run("Not Configured", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "inventory", zap.NewNop(), nil, auditConfig())

		missing, err := svc.CheckTable(context.Background())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("No Database", func(t *testing.T) {
		cfg := auditConfig()
		cfg.StorefrontTable = "stock_levels"

		svc := NewService(new(mocks.Client), "inventory", zap.NewNop(), nil, cfg)

		_, err := svc.CheckTable(context.Background())
		assert.Error(t, err)
	})

	t.Run("Missing Column", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `stock_levels`").
			WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
				AddRow("sku", "varchar(64)", "NO", "", nil, ""))

		cfg := auditConfig()
		cfg.StorefrontTable = "stock_levels"

		svc := NewService(new(mocks.Client), "inventory", zap.NewNop(), db, cfg)

		missing, err := svc.CheckTable(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"quantity"}, missing)
	})
}
