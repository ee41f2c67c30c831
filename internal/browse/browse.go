package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/bookshelf/internal/book"
	"github.com/muurk/bookshelf/internal/style"
	"github.com/muurk/bookshelf/internal/table"
	"github.com/muurk/bookshelf/internal/ui"
)

// chrome is the number of lines around the table: border, detail, help.
const chrome = 6

// keyMap defines key bindings for the browser
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Detail, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Detail, k.Quit}}
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ui.PrimaryColor)

	detailStyle = lipgloss.NewStyle().
			Foreground(ui.AccentColor).
			PaddingLeft(1)
)

// Model is a read-only Bubble Tea view over a snapshot of catalog records.
type Model struct {
	records []book.Record
	table   btable.Model
	detail  string
	keys    keyMap
	help    help.Model
}

// New builds a browser over records. The slice is not modified.
func New(records []book.Record) Model {
	cells := table.Cells(records)
	rows := make([]btable.Row, len(cells))
	for i, row := range cells {
		plain := make(btable.Row, len(row))
		for j, cell := range row {
			plain[j] = style.Strip(cell)
		}
		rows[i] = plain
	}

	t := btable.New(
		btable.WithColumns(columns(rows)),
		btable.WithRows(rows),
		btable.WithFocused(true),
		btable.WithHeight(min(len(rows), 15)+1),
	)

	s := btable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.MutedColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(ui.PrimaryColor).
		Bold(true)
	t.SetStyles(s)

	return Model{
		records: records,
		table:   t,
		keys:    defaultKeys(),
		help:    help.New(),
	}
}

// columns sizes each column to its widest header or cell.
func columns(rows []btable.Row) []btable.Column {
	cols := make([]btable.Column, len(table.Headers))
	for i, h := range table.Headers {
		w := style.VisibleLength(h)
		for _, row := range rows {
			w = max(w, style.VisibleLength(row[i]))
		}
		cols[i] = btable.Column{Title: h, Width: w}
	}
	return cols
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if h := msg.Height - chrome; h > 1 {
			m.table.SetHeight(min(h, len(m.records)+1))
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Detail):
			if c := m.table.Cursor(); c >= 0 && c < len(m.records) {
				m.detail = style.Strip(m.records[c].String())
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(borderStyle.Render(m.table.View()))
	b.WriteString("\n")
	if m.detail != "" {
		b.WriteString(detailStyle.Render(m.detail))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the index of the highlighted record.
func (m Model) Selected() int {
	return m.table.Cursor()
}

// Run shows the browser full-screen until the operator quits.
func Run(records []book.Record) error {
	_, err := tea.NewProgram(New(records), tea.WithAltScreen()).Run()
	return err
}
