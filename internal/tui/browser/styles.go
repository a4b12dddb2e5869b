package browser

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("99")  // Purple
	mutedColor  = lipgloss.Color("245") // Gray
	noticeColor = lipgloss.Color("42")  // Green
	errorColor  = lipgloss.Color("196") // Red

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(accentColor).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	detailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().Foreground(noticeColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
)
