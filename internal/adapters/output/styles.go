package output

import "github.com/charmbracelet/lipgloss"

// Private brand colors.
var colorIris = lipgloss.Color("#8B5CF6")

type styles struct {
	header lipgloss.Style
	none   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().
			Foreground(colorIris).
			Bold(true),
		none: r.NewStyle().
			Faint(true),
	}
}
