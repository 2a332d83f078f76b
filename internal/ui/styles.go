package ui

import "github.com/charmbracelet/lipgloss"

const Banner = `
 ┏━┓┏┓╻   ┏━┓┏━┓┏━┓
 ┣┳┛┃┗┫   ┣━┫┣━┛┣━┛
 ╹┗╸╹ ╹   ╹ ╹╹  ╹  
`

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#61dafb")).
			MarginBottom(1)

	QuestionStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("#61dafb")).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1).
			MarginBottom(1)

	DescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b19cd9")) // purple-ish
	OptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff"))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#61dafb"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#61dafb")).
			Padding(1, 2).
			Margin(1, 2)

	// status line markers
	SpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#61dafb"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd787"))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fafff"))
	FailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f87"))
)
