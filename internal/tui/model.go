package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andy/playbill/internal/app"
	"github.com/andy/playbill/internal/domain"
	"github.com/andy/playbill/internal/service"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenInvoices Screen = iota
	ScreenStatement
	ScreenPlays
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenInvoices:
		return "Invoices"
	case ScreenStatement:
		return "Statement"
	case ScreenPlays:
		return "Plays"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	invoices []domain.Invoice
	catalog  domain.Catalog
	cursor   int
	loading  bool

	// Statement view
	pending  string // customer whose statement is being rendered
	customer string
	result   *service.StatementResult
	viewport viewport.Model

	// Error state
	err error
}

// New creates a new root model
func New(a *app.App) Model {
	return Model{
		app:           a,
		currentScreen: ScreenInvoices,
		loading:       true,
		viewport:      viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadData()
}

func (m Model) loadData() tea.Cmd {
	svc := m.app.StatementService
	return func() tea.Msg {
		ctx := context.Background()
		catalog, err := svc.Catalog(ctx)
		if err != nil {
			return dataMsg{err: err}
		}
		invoices, err := svc.ListInvoices(ctx)
		if err != nil {
			return dataMsg{err: err}
		}
		return dataMsg{invoices: invoices, catalog: catalog}
	}
}

func (m Model) renderStatement(inv domain.Invoice) tea.Cmd {
	svc := m.app.StatementService
	catalog := m.catalog
	return func() tea.Msg {
		result, err := svc.RenderInvoice(context.Background(), inv, catalog)
		return statementMsg{customer: inv.Customer, result: result, err: err}
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-12, 20)
		m.viewport.Height = max(msg.Height-14, 5)
		return m, nil

	case dataMsg:
		m.loading = false
		m.err = msg.err
		m.invoices = msg.invoices
		m.catalog = msg.catalog
		if m.cursor >= len(m.invoices) {
			m.cursor = 0
		}
		return m, nil

	case statementMsg:
		if m.pending == "" || msg.customer != m.pending {
			return m, nil
		}
		m.pending = ""
		m.customer = msg.customer
		m.result = msg.result
		m.err = msg.err
		m.currentScreen = ScreenStatement
		if msg.result != nil {
			m.viewport.SetContent(m.styledStatement(msg.result))
		} else {
			m.viewport.SetContent("")
		}
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Quit):
			return m, tea.Quit

		case key.Matches(msg, DefaultKeyMap.Plays):
			m.pending = ""
			m.currentScreen = ScreenPlays
			return m, nil

		case key.Matches(msg, DefaultKeyMap.Invoices):
			m.pending = ""
			m.currentScreen = ScreenInvoices
			m.err = nil
			return m, m.loadData()

		case key.Matches(msg, DefaultKeyMap.Back):
			m.pending = ""
			if m.currentScreen != ScreenInvoices {
				m.currentScreen = ScreenInvoices
				m.err = nil
			}
			return m, nil
		}

		if m.currentScreen == ScreenInvoices {
			switch {
			case key.Matches(msg, DefaultKeyMap.Up):
				if m.cursor > 0 {
					m.cursor--
				}
				return m, nil
			case key.Matches(msg, DefaultKeyMap.Down):
				if m.cursor < len(m.invoices)-1 {
					m.cursor++
				}
				return m, nil
			case key.Matches(msg, DefaultKeyMap.Select):
				if len(m.invoices) > 0 {
					inv := m.invoices[m.cursor]
					m.pending = inv.Customer
					return m, m.renderStatement(inv)
				}
				return m, nil
			}
		}
	}

	// Route remaining messages (scrolling) to the statement viewport
	if m.currentScreen == ScreenStatement {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// styledStatement renders the statement text with amounts highlighted
func (m Model) styledStatement(result *service.StatementResult) string {
	lines := strings.Split(strings.TrimSuffix(result.Text, "\n"), "\n")
	if len(lines) == 0 {
		return ""
	}
	lines[0] = titleStyle.Render(lines[0])
	// total and credits
	for i := max(len(lines)-2, 1); i < len(lines); i++ {
		lines[i] = amountStyle.Render(lines[i])
	}
	return strings.Join(lines, "\n")
}

func (m Model) invoicesView() string {
	if m.loading {
		return "Loading..."
	}
	if len(m.invoices) == 0 {
		return subtitleStyle.Render("No invoices found in " + m.app.Config.Data.InvoicesPath)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Invoices") + "\n\n")
	for i, inv := range m.invoices {
		row := fmt.Sprintf("%-24s %3d performance(s), %4d seats", inv.Customer, len(inv.Performances), inv.TotalAudience())
		if i == m.cursor {
			row = selectedStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
	b.WriteString("\n" + subtitleStyle.Render("enter: view statement"))
	return b.String()
}

func (m Model) statementView() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Statement for %s was not produced:\n\n%s", m.customer, m.err.Error()))
	}
	if m.result == nil {
		return "Loading..."
	}
	return statementBoxStyle.Render(m.viewport.View())
}

func (m Model) playsView() string {
	if len(m.catalog) == 0 {
		return subtitleStyle.Render("No plays loaded")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Plays") + "\n\n")
	for _, id := range m.catalog.IDs() {
		play := m.catalog[id]
		genre := string(play.Genre)
		if !play.Genre.Known() {
			genre = warnStyle.Render(genre + " (unpriced)")
		}
		b.WriteString(fmt.Sprintf("  %-15s %-30s %s\n", id, play.Name, genre))
	}
	return b.String()
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("playbill - %s", m.currentScreen.String()))
	footer := footerStyle.Render("[I]nvoices  [P]lays  [Esc] Back  [Q]uit")

	var content string
	switch m.currentScreen {
	case ScreenInvoices:
		content = m.invoicesView()
		if m.err != nil {
			content += "\n" + errorStyle.Render("Error: "+m.err.Error())
		}
	case ScreenStatement:
		content = m.statementView()
	case ScreenPlays:
		content = m.playsView()
	}

	innerWidth := max(m.width-6, 20) // account for border (2) + padding (4)
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", max(innerWidth-12, 10)),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s", header, divider, content, divider, footer)

	frame := appBorderStyle.
		Width(innerWidth).
		Height(max(m.height-4, 10))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
