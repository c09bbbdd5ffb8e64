package tui

import "github.com/charmbracelet/lipgloss"

// Dark palette close to the in-game settings screen.
var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0f0f0"))
	pathStyle       = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff6b6b"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#90b0ff"))
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#90b0ff"))
	metaStyle       = lipgloss.NewStyle().Faint(true)
	dirtyStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd166"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
