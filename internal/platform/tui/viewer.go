package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileforge/internal/config"
	"github.com/vovakirdan/tileforge/internal/grid"
)

// viewerChrome is the number of rows reserved for the title and help bars.
const viewerChrome = 2

// ViewerKeyMap defines the key bindings for the map viewer.
type ViewerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FastUp    key.Binding
	FastDown  key.Binding
	FastLeft  key.Binding
	FastRight key.Binding
	Origin    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Origin, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.FastUp, k.FastDown, k.FastLeft, k.FastRight},
		{k.Origin, k.Back, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "pan down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "pan right"),
		),
		FastUp: key.NewBinding(
			key.WithKeys("pgup", "K"),
			key.WithHelp("pgup/K", "pan up fast"),
		),
		FastDown: key.NewBinding(
			key.WithKeys("pgdown", "J"),
			key.WithHelp("pgdn/J", "pan down fast"),
		),
		FastLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "pan left fast"),
		),
		FastRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "pan right fast"),
		),
		Origin: key.NewBinding(
			key.WithKeys("0", "home"),
			key.WithHelp("0", "back to origin"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ViewerModel is the Bubble Tea model for panning around a tile grid.
type ViewerModel struct {
	grid      *grid.Grid
	cam       grid.Camera
	viewer    config.ViewerConfig
	title     string
	stepFast  int
	keys      ViewerKeyMap
	help      help.Model
	width     int
	quitting  bool
	goingBack bool
}

// NewViewerModel creates a viewer over the given grid. The camera window
// fills the terminal minus the title and help rows.
func NewViewerModel(g *grid.Grid, viewer config.ViewerConfig, title string, width, height int) ViewerModel {
	stepFast := viewer.StepFast
	if stepFast <= 0 {
		stepFast = 10
	}

	h := help.New()
	h.ShowAll = false

	return ViewerModel{
		grid:     g,
		cam:      grid.Camera{Size: grid.Pt(width, max(height-viewerChrome, 0))},
		viewer:   viewer,
		title:    title,
		stepFast: stepFast,
		keys:     DefaultViewerKeyMap(),
		help:     h,
		width:    width,
	}
}

// Init initializes the viewer model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.cam.Size = grid.Pt(msg.Width, max(msg.Height-viewerChrome, 0))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Panning is unclamped; cells outside
// the grid render as empty.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cam.Pos.Y--
	case key.Matches(msg, m.keys.Down):
		m.cam.Pos.Y++
	case key.Matches(msg, m.keys.Left):
		m.cam.Pos.X--
	case key.Matches(msg, m.keys.Right):
		m.cam.Pos.X++

	case key.Matches(msg, m.keys.FastUp):
		m.cam.Pos.Y -= m.stepFast
	case key.Matches(msg, m.keys.FastDown):
		m.cam.Pos.Y += m.stepFast
	case key.Matches(msg, m.keys.FastLeft):
		m.cam.Pos.X -= m.stepFast
	case key.Matches(msg, m.keys.FastRight):
		m.cam.Pos.X += m.stepFast

	case key.Matches(msg, m.keys.Origin):
		m.cam.Pos = grid.Pt(0, 0)
	}

	return m, nil
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	title := fmt.Sprintf("%s  %dx%d  @(%d,%d)",
		m.title, m.grid.Width(), m.grid.Height(), m.cam.Pos.X, m.cam.Pos.Y)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(RenderView(m.cam.Snapshot(m.grid), m.viewer))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to the picker.
func (m ViewerModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ViewerModel) IsQuitting() bool {
	return m.quitting
}

// RunViewer runs the viewer over a grid in the local terminal.
func RunViewer(g *grid.Grid, viewer config.ViewerConfig, title string, width, height int) error {
	model := NewViewerModel(g, viewer, title, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
