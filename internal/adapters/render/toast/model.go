package toast

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mcarrasqub/itimer/internal/application"
	"github.com/mcarrasqub/itimer/internal/domain"
)

// Source is the live notification stack a renderer draws.
type Source interface {
	Snapshot() []domain.Notification
	Changes() <-chan struct{}
}

type Options struct {
	Source   Source
	Outcomes <-chan application.CycleOutcome
	// Done closes when the poll loop has exited.
	Done    <-chan struct{}
	Cancel  func()
	Session domain.SessionContext
}

type stackChangedMsg struct{}

type outcomeMsg struct {
	outcome application.CycleOutcome
}

type loopDoneMsg struct{}

type Model struct {
	opts     Options
	header   Header
	entries  []domain.Notification
	spinner  spinner.Model
	styles   styles
	quitting bool
	// finished keeps the last stack on screen after the poll loop exits.
	finished bool
}

func NewModel(opts Options) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		opts:    opts,
		header:  Header{SessionID: opts.Session.SessionID},
		spinner: s,
		styles:  newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		waitForChange(m.opts.Source),
		waitForOutcome(m.opts.Outcomes),
		waitForDone(m.opts.Done),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			if m.opts.Cancel != nil {
				m.opts.Cancel()
			}
			return m, tea.Quit
		}
		return m, nil
	case stackChangedMsg:
		m.entries = m.opts.Source.Snapshot()
		return m, waitForChange(m.opts.Source)
	case outcomeMsg:
		m.header = m.header.Observe(msg.outcome, m.opts.Session.TotalTimeAllowedSeconds)
		return m, waitForOutcome(m.opts.Outcomes)
	case loopDoneMsg:
		m.finished = true
		if m.opts.Source != nil {
			m.entries = m.opts.Source.Snapshot()
		}
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.header, m.spinner.View(), m.styles))
	b.WriteString("\n\n")
	b.WriteString(renderStack(m.entries, m.styles))
	b.WriteString("\n")
	if !m.finished {
		b.WriteString(m.styles.help.Render("q: stop watching"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) Entries() []domain.Notification {
	return m.entries
}

func (m Model) Header() Header {
	return m.header
}

// Run drives the model until the user quits, the loop finishes or ctx is
// done.
func Run(ctx context.Context, opts Options, input io.Reader, output io.Writer) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func waitForChange(source Source) tea.Cmd {
	if source == nil {
		return nil
	}

	return func() tea.Msg {
		if _, ok := <-source.Changes(); !ok {
			return nil
		}
		return stackChangedMsg{}
	}
}

func waitForOutcome(outcomes <-chan application.CycleOutcome) tea.Cmd {
	if outcomes == nil {
		return nil
	}

	return func() tea.Msg {
		outcome, ok := <-outcomes
		if !ok {
			return nil
		}
		return outcomeMsg{outcome: outcome}
	}
}

func waitForDone(done <-chan struct{}) tea.Cmd {
	if done == nil {
		return nil
	}

	return func() tea.Msg {
		<-done
		return loopDoneMsg{}
	}
}
