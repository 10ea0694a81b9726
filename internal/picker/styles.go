package picker

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#7C3AED")
	muted  = lipgloss.Color("#6B7280")
	fg     = lipgloss.Color("#F9FAFB")
	picked = lipgloss.Color("#4F46E5")
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(picked).
				Foreground(fg)

	hintStyle = lipgloss.NewStyle().
			Foreground(muted)

	descStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)
)
