package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "inventory", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "storefront", cfg.Database.Name)

	assert.Equal(t, "ledgers/fba.csv", cfg.Audit.FBAObject)
	assert.Equal(t, "ledgers/storefront.csv", cfg.Audit.StorefrontObject)
	assert.Equal(t, "reports/audit.csv", cfg.Audit.ReportObject)
	assert.Equal(t, "sku", cfg.Audit.FBAKeyColumn)
	assert.Equal(t, "reject", cfg.Audit.DuplicatePolicy)
	assert.Equal(t, "storefront", cfg.Audit.DisplayKey)
	assert.Equal(t, 0, cfg.Audit.CacheTTLSeconds)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUDIT_DUPLICATE_POLICY", "sum")
	t.Setenv("AUDIT_STOREFRONT_TABLE", "stock_levels")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sum", cfg.Audit.DuplicatePolicy)
	assert.Equal(t, "stock_levels", cfg.Audit.StorefrontTable)
}

func TestLoadConfigInvalidPolicy(t *testing.T) {
	t.Setenv("AUDIT_DUPLICATE_POLICY", "first")

	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_policy")
}
