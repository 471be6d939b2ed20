package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#333333")).Background(lipgloss.Color("#FFCC00")).Padding(0, 2)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	emptyStyle      = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#56A3C1"))
	editingStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#808080"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	actionStyle     = lipgloss.NewStyle().Bold(true)
	deleteStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555"))
	buttonStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3A7BD5")).Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
