package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileforge/internal/config"
	"github.com/vovakirdan/tileforge/internal/grid"
)

// colorStyles maps every packed grid color to a lipgloss style. Built once
// at startup; styles are read-only so concurrent SSH sessions can share them.
var colorStyles = func() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	for c := range styles {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(grid.Color(c).Hex()))
	}
	return styles
}()

// RenderView converts a camera view to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderView(v grid.View, viewer config.ViewerConfig) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(v.W*v.H*2 + v.H)

	for y := 0; y < v.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < v.W {
			startColor := v.ColorAt(x, y)

			var run strings.Builder
			for x < v.W && v.ColorAt(x, y) == startColor {
				run.WriteString(viewer.Glyph(v.TileAt(x, y)))
				x++
			}

			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}
