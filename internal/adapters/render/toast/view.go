package toast

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mcarrasqub/itimer/internal/application"
	"github.com/mcarrasqub/itimer/internal/domain"
)

// Header is the last observed state of the poll loop.
type Header struct {
	SessionID string
	Status    domain.TimerState
	Elapsed   string
	Progress  *float64
	LastError string
}

// Observe folds a cycle outcome into the header.
func (h Header) Observe(outcome application.CycleOutcome, totalAllowed int) Header {
	if outcome.Err != nil {
		h.LastError = outcome.Err.Error()
		return h
	}

	h.LastError = ""
	h.Status = outcome.Status.Status
	h.Progress = outcome.Status.ProgressRatio
	if elapsed, ok := domain.ElapsedSeconds(outcome.Status.RemainingSeconds, totalAllowed); ok {
		h.Elapsed = domain.FormatClock(elapsed)
	}
	return h
}

func renderHeader(h Header, spin string, s styles) string {
	parts := []string{spin, s.header.Render("itimer"), s.headerMeta.Render("session " + h.SessionID)}

	status := string(h.Status)
	if status == "" {
		status = "waiting"
	}
	parts = append(parts, s.headerMeta.Render(status))

	if h.Elapsed != "" {
		parts = append(parts, s.headerMeta.Render("elapsed "+h.Elapsed))
	}
	if h.Progress != nil {
		parts = append(parts, s.headerMeta.Render(fmt.Sprintf("%.0f%%", *h.Progress*100)))
	}
	if h.LastError != "" {
		parts = append(parts, s.faded.Render("(backend unreachable)"))
	}

	return strings.Join(parts, "  ")
}

// RenderStack draws live notifications oldest first. Entries that are still
// entering or already exiting are drawn faded.
func RenderStack(entries []domain.Notification) string {
	return renderStack(entries, newStyles())
}

func renderStack(entries []domain.Notification, s styles) string {
	if len(entries) == 0 {
		return s.empty.Render("No notifications.")
	}

	boxes := make([]string, 0, len(entries))
	for _, entry := range entries {
		boxes = append(boxes, renderToast(entry, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func renderToast(entry domain.Notification, s styles) string {
	title := s.title(entry.Kind).Render(entry.Kind.Title())
	body := s.body.Render(entry.Text)
	border := s.border(entry.Kind)

	if entry.Phase != domain.PhaseVisible {
		title = s.faded.Render(entry.Kind.Title())
		body = s.faded.Render(entry.Text)
		border = s.fadedBorder
	}

	return s.box.BorderForeground(border).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// PlainLine is the line the plain renderer prints for one notification.
func PlainLine(entry domain.Notification) string {
	return fmt.Sprintf("[%s] %s", entry.Kind.Title(), entry.Text)
}
