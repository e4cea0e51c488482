package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Phones")
	cfg.Tax.DefaultRateID = "tax2"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business, got.Business)
	assert.Equal(t, cfg.Fiscal.YearStart, got.Fiscal.YearStart)
	assert.Equal(t, 20, got.Inventory.LowStockThreshold)
	assert.Equal(t, "tax2", got.Tax.DefaultRateID)
	assert.Equal(t, cfg.Git, got.Git)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Shop")

	assert.Equal(t, "My Shop", cfg.Business.Name)
	assert.Equal(t, "USD", cfg.Business.Currency)
	assert.Equal(t, "01-01", cfg.Fiscal.YearStart)
	assert.Equal(t, 20, cfg.Inventory.LowStockThreshold)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Shopbook", cfg.Git.AuthorName)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Test Phones")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Phones")
	assert.Contains(t, contents, "currency: USD")
	assert.Contains(t, contents, "year_start: 01-01")
	assert.Contains(t, contents, "low_stock_threshold: 20")
	assert.Contains(t, contents, "auto_commit: true")
	assert.NotContains(t, contents, "default_rate_id")
}

func TestValidateReportsEverything(t *testing.T) {
	cfg := &Config{
		Business:  BusinessConfig{Currency: "ZZZ"},
		Fiscal:    FiscalConfig{YearStart: "13-01"},
		Inventory: InventoryConfig{LowStockThreshold: -1},
		Git:       GitConfig{AutoCommit: true},
	}
	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "business.name")
	assert.Contains(t, msg, "business.currency")
	assert.Contains(t, msg, "fiscal.year_start")
	assert.Contains(t, msg, "low_stock_threshold")
	assert.Contains(t, msg, "git.author_name")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvCurrency, "eur")
	t.Setenv(EnvLowStock, "5")
	t.Setenv(EnvLogLevel, "debug")

	cfg := Default("My Shop")
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")))

	assert.Equal(t, "EUR", cfg.Business.Currency)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnvFile(t *testing.T) {
	t.Setenv(EnvLowStock, "")
	require.NoError(t, os.Unsetenv(EnvLowStock))
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHOPBOOK_LOW_STOCK=7\n"), 0o644))

	cfg := Default("My Shop")
	require.NoError(t, cfg.ApplyEnv(envFile))
	assert.Equal(t, 7, cfg.Inventory.LowStockThreshold)
}

func TestApplyEnvBadNumber(t *testing.T) {
	t.Setenv(EnvLowStock, "lots")
	err := Default("My Shop").ApplyEnv("")
	assert.ErrorContains(t, err, EnvLowStock)
}
