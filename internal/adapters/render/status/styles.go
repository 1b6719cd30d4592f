package status

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	label      lipgloss.Style
	detail     lipgloss.Style
	message    lipgloss.Style
	running    lipgloss.Style
	paused     lipgloss.Style
	ended      lipgloss.Style
	unknown    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		message:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("159")),
		running:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		paused:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		ended:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		unknown:    lipgloss.NewStyle().Faint(true),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

func (s styles) state(raw string) lipgloss.Style {
	switch raw {
	case "RUNNING":
		return s.running
	case "PAUSED":
		return s.paused
	case "ENDED":
		return s.ended
	default:
		return s.unknown
	}
}
