package console

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles the Console renders with.
type Styles struct {
	Prompt     lipgloss.Style
	Info       lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	XP         lipgloss.Style
	Muted      lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
}

// DefaultStyles is the palette used on interactive terminals.
func DefaultStyles() Styles {
	return Styles{
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Bold(true),
		Info:       lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399")).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")).Bold(true),
		XP:         lipgloss.NewStyle().Foreground(lipgloss.Color("#facc15")).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#facc15")).Padding(0, 2),
		PanelTitle: lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyles renders everything unstyled. Used when the output is not
// a terminal or colors are disabled.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Prompt:     plain,
		Info:       plain,
		Success:    plain,
		Error:      plain,
		XP:         plain,
		Muted:      plain,
		Panel:      plain,
		PanelTitle: plain,
	}
}
