package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/playbill/internal/config"
)

func writeFixtures(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	plays := filepath.Join(dir, "plays.json")
	invoices := filepath.Join(dir, "invoices.json")
	require.NoError(t, os.WriteFile(plays, []byte(`{"hamlet": {"name": "Hamlet", "type": "tragedy"}}`), 0644))
	require.NoError(t, os.WriteFile(invoices, []byte(`[{"customer": "BigCo", "performances": [{"playID": "hamlet", "audience": 55}]}]`), 0644))

	cfg := config.DefaultConfig()
	cfg.Data.PlaysPath = plays
	cfg.Data.InvoicesPath = invoices
	cfg.Log.Level = "error"
	return cfg
}

func TestNewWithConfig_RendersStatement(t *testing.T) {
	cfg := writeFixtures(t)
	cfg.Statement.Language = "en"

	a, err := NewWithConfig(cfg)
	require.NoError(t, err)
	defer a.Close()

	result, err := a.StatementService.Render(context.Background(), "BigCo")
	require.NoError(t, err)
	assert.Equal(t, "Statement for BigCo\nHamlet : $650.00 (55 seats)\nAmount owed: $650.00\nEarned credits: 25 points\n", result.Text)
}

func TestNewWithConfig_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Statement.Language = "xx"

	_, err := NewWithConfig(cfg)
	assert.Error(t, err)
}

func TestNew_UsesConfigFile(t *testing.T) {
	cfg := writeFixtures(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.Save(path))

	a, err := New(path)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, path, a.ConfigPath)
	assert.Equal(t, cfg.Data.PlaysPath, a.Config.Data.PlaysPath)

	a.Config.Statement.Language = "en"
	require.NoError(t, a.SaveConfig())

	reloaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "en", reloaded.Statement.Language)
}

func TestNewRenderer_CurrencySymbol(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Statement.CurrencySymbol = "€"

	r, err := NewRenderer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "€1,234.50", r.Format(123450))
}
