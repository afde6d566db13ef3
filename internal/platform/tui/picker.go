package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileforge/internal/storage"
)

// Picker layout constants
const (
	pathColMin  = 24 // Minimum width of the map path column
	pathColMax  = 48 // Maximum width of the map path column
	layerColLen = 14 // Width of the layer name column
)

// PickerKeyMap defines the key bindings for the layer picker.
type PickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Refresh, k.Quit},
	}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open layer"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload catalog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model for choosing a cataloged layer.
type PickerModel struct {
	store    *storage.Store
	layers   []storage.LayerEntry
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	status   string
	chosen   *storage.LayerEntry
	quitting bool
}

// NewPickerModel creates a picker over the catalog in store.
func NewPickerModel(store *storage.Store, width, height int) PickerModel {
	h := help.New()
	h.ShowAll = false

	m := PickerModel{
		store:  store,
		keys:   DefaultPickerKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.loadLayers()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *PickerModel) createTable() table.Model {
	pathWidth := m.width - layerColLen - 24 // Size, format, margins
	if pathWidth < pathColMin {
		pathWidth = pathColMin
	}
	if pathWidth > pathColMax {
		pathWidth = pathColMax
	}

	columns := []table.Column{
		{Title: "Map", Width: pathWidth},
		{Title: "Layer", Width: layerColLen},
		{Title: "Size", Width: 9},
		{Title: "Format", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-7), // Leave room for header, status, help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadLayers reloads the layer list from the catalog.
func (m *PickerModel) loadLayers() {
	if m.store == nil {
		m.layers = nil
		m.updateTableRows()
		return
	}

	layers, err := m.store.AllLayers()
	if err != nil {
		m.layers = nil
		m.status = fmt.Sprintf("cannot read catalog: %v", err)
	} else {
		m.layers = layers
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current layers.
func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.layers))
	for i, l := range m.layers {
		format := l.Encoding
		if l.Compression != "" {
			format += "+" + l.Compression
		}
		rows[i] = table.Row{
			truncatePath(l.MapPath, pathColMax),
			l.Name,
			fmt.Sprintf("%dx%d", l.Width, l.Height),
			format,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// truncatePath shortens long paths from the left, keeping the tail.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// SetStatus sets the one-line status message shown above the table.
func (m *PickerModel) SetStatus(status string) {
	m.status = status
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.layers) > 0 {
				cursor := m.table.Cursor()
				if cursor >= 0 && cursor < len(m.layers) {
					chosen := m.layers[cursor]
					m.chosen = &chosen
					return m, tea.Quit // Exit picker to open the viewer
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.status = "catalog reloaded"
			m.loadLayers()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("TILEFORGE MAP CATALOG", m.width)))
	b.WriteString("\n\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
		b.WriteString(centerText(statusStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m PickerModel) renderTableContent() string {
	if len(m.layers) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No maps cataloged yet.\nRun 'tileforge scan <dir>' to index your maps.")
	}

	return m.table.View()
}

// Chosen returns the selected layer, or nil if none selected.
func (m PickerModel) Chosen() *storage.LayerEntry {
	return m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
