package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	canvas lipgloss.Style
	trace  lipgloss.Style
	body   lipgloss.Style
	panel  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	status lipgloss.Style
	done   lipgloss.Style
	help   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		trace:  lipgloss.NewStyle().Foreground(t.Trace),
		body:   lipgloss.NewStyle().Foreground(t.Body).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(40),
		header: lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		graph:  lipgloss.NewStyle().Foreground(t.Accent).Padding(1, 0),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true),
		done:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00")).Bold(true),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
	}
}

// progressBar renders percent in [0, 1] as a fixed-width bar.
func progressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
