package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mcarrasqub/itimer/internal/domain"
)

const toastWidth = 56

type styles struct {
	header      lipgloss.Style
	headerMeta  lipgloss.Style
	help        lipgloss.Style
	empty       lipgloss.Style
	box         lipgloss.Style
	infoTitle   lipgloss.Style
	warnTitle   lipgloss.Style
	body        lipgloss.Style
	faded       lipgloss.Style
	infoBorder  lipgloss.Color
	warnBorder  lipgloss.Color
	fadedBorder lipgloss.Color
}

func newStyles() styles {
	return styles{
		header:      lipgloss.NewStyle().Bold(true),
		headerMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		help:        lipgloss.NewStyle().Faint(true),
		empty:       lipgloss.NewStyle().Faint(true),
		box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(toastWidth),
		infoTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		warnTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faded:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		infoBorder:  lipgloss.Color("39"),
		warnBorder:  lipgloss.Color("214"),
		fadedBorder: lipgloss.Color("238"),
	}
}

func (s styles) title(kind domain.NotificationKind) lipgloss.Style {
	if kind == domain.NotificationWarning {
		return s.warnTitle
	}
	return s.infoTitle
}

func (s styles) border(kind domain.NotificationKind) lipgloss.Color {
	if kind == domain.NotificationWarning {
		return s.warnBorder
	}
	return s.infoBorder
}
