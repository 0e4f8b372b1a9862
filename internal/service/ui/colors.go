package ui

import "github.com/charmbracelet/lipgloss"

// ANSI colors only, so output follows the terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	GoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	BadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// ScoreStyle picks a color for a match score in [0, 1].
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.8:
		return GoodStyle
	case score > 0:
		return WarnStyle
	default:
		return DescStyle
	}
}
