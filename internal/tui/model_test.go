package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/playbill/internal/app"
	"github.com/andy/playbill/internal/config"
	"github.com/andy/playbill/internal/domain"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Data.PlaysPath = filepath.Join(dir, "plays.json")
	cfg.Data.InvoicesPath = filepath.Join(dir, "invoices.json")
	cfg.Statement.Language = "en"
	cfg.Log.Level = "error"
	require.NoError(t, os.WriteFile(cfg.Data.PlaysPath, []byte(`{
		"hamlet": {"name": "Hamlet", "type": "tragedy"},
		"noises": {"name": "Noises Off", "type": "farce"}
	}`), 0644))
	require.NoError(t, os.WriteFile(cfg.Data.InvoicesPath, []byte(`[
		{"customer": "BigCo", "performances": [{"playID": "hamlet", "audience": 55}]},
		{"customer": "FarceCo", "performances": [{"playID": "noises", "audience": 20}]}
	]`), 0644))

	a, err := app.NewWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	m := New(a)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	msg := m.Init()()
	updated, _ = m.Update(msg)
	return updated.(Model)
}

// drive runs the command produced by an update and feeds its message back
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(Model)
	if cmd != nil {
		if next := cmd(); next != nil {
			updated, _ = m.Update(next)
			m = updated.(Model)
		}
	}
	return m
}

func TestModel_LoadsInvoices(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.invoices, 2)
	assert.Len(t, m.catalog, 2)
	assert.Contains(t, m.View(), "BigCo")
	assert.Contains(t, m.View(), "FarceCo")
}

func TestModel_SelectRendersStatement(t *testing.T) {
	m := newTestModel(t)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ScreenStatement, m.currentScreen)
	require.NoError(t, m.err)
	require.NotNil(t, m.result)
	assert.Equal(t, int64(65000), m.result.Statement.TotalAmount)
	assert.Contains(t, m.View(), "$650.00")
}

func TestModel_UnknownGenreShowsError(t *testing.T) {
	m := newTestModel(t)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ScreenStatement, m.currentScreen)
	assert.Nil(t, m.result)
	assert.ErrorIs(t, m.err, domain.ErrUnknownGenre)
	assert.Contains(t, m.View(), "was not produced")

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenInvoices, m.currentScreen)
	assert.NoError(t, m.err)
}

func TestModel_StaleStatementIgnoredAfterBack(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ScreenInvoices, m.currentScreen)

	updated, _ = m.Update(cmd())
	m = updated.(Model)
	assert.Equal(t, ScreenInvoices, m.currentScreen)
	assert.Nil(t, m.result)
	assert.NoError(t, m.err)
}

func TestModel_PlaysScreen(t *testing.T) {
	m := newTestModel(t)

	m = drive(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.Equal(t, ScreenPlays, m.currentScreen)
	assert.Contains(t, m.View(), "Noises Off")
	assert.Contains(t, m.View(), "unpriced")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
