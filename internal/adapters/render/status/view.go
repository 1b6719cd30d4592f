package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mcarrasqub/itimer/internal/domain"
)

const progressBarWidth = 24

type RenderOptions struct {
	SessionID               string
	TotalTimeAllowedSeconds int
}

func renderView(status domain.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Interview Session Timer"),
		s.header.Render(fmt.Sprintf("session: %s", opts.SessionID)),
		stateLine(status, s),
	}

	if status.HasMessage() {
		lines = append(lines, s.message.Render(status.Message))
	} else {
		lines = append(lines, s.empty.Render("No message from the coach."))
	}

	lines = append(lines, clockLine(status, opts, s))
	if status.ProgressRatio != nil {
		lines = append(lines, progressLine(*status.ProgressRatio, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func stateLine(status domain.SessionStatus, s styles) string {
	state := string(status.Status)
	if state == "" {
		state = "UNKNOWN"
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("status: "), s.state(state).Render(state))
}

func clockLine(status domain.SessionStatus, opts RenderOptions, s styles) string {
	if status.RemainingSeconds == nil {
		return s.detail.Render("remaining: n/a")
	}

	remaining := *status.RemainingSeconds
	if remaining < 0 {
		remaining = 0
	}
	line := fmt.Sprintf("remaining: %s", domain.FormatClock(remaining))
	if elapsed, ok := domain.ElapsedSeconds(status.RemainingSeconds, opts.TotalTimeAllowedSeconds); ok {
		line += fmt.Sprintf("  elapsed: %s", domain.FormatClock(elapsed))
	}

	return s.detail.Render(line)
}

func progressLine(ratio float64, s styles) string {
	percent := clampPercent(ratio * 100)
	percentStyle := lipgloss.NewStyle().Foreground(interpolateColor(percent, 0, 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("progress: "),
		renderProgressBar(percent, progressBarWidth, s),
		" ",
		percentStyle.Render(fmt.Sprintf("%3.0f%%", percent)),
	)
}

func renderProgressBar(donePercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(donePercent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
