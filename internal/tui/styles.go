package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/khangtapcode/TerminalTodo/internal/config"
)

const headerWidth = 38

// Styles holds every lipgloss style the terminal uses.
type Styles struct {
	Header   lipgloss.Style
	Section  lipgloss.Style
	Done     lipgloss.Style
	Pending  lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Farewell lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
	Cursor   lipgloss.Style
	Danger   lipgloss.Style
}

// NewStyles builds styles for the given renderer, so colour support is
// detected on the output actually written to.
func NewStyles(r *lipgloss.Renderer, cfg config.UIConfig) Styles {
	accent := lipgloss.Color(cfg.Accent)
	danger := lipgloss.Color(cfg.Danger)
	green := lipgloss.Color("2")
	yellow := lipgloss.Color("3")

	return Styles{
		Header: r.NewStyle().
			Bold(true).
			Foreground(accent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).
			Width(headerWidth).
			Align(lipgloss.Center),
		Section:  r.NewStyle().Bold(true).Foreground(yellow),
		Done:     r.NewStyle().Foreground(green).Strikethrough(true),
		Pending:  r.NewStyle(),
		Muted:    r.NewStyle().Faint(true),
		Success:  r.NewStyle().Foreground(green),
		Farewell: r.NewStyle().Bold(true),
		Question: r.NewStyle().Bold(true),
		Answer:   r.NewStyle().Foreground(accent),
		Cursor:   r.NewStyle().Foreground(accent),
		Danger:   r.NewStyle().Foreground(danger),
	}
}
