package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mcarrasqub/itimer/internal/domain"
)

type statusFetcher func(ctx context.Context, sessionID string) (domain.SessionStatus, error)

type statusFetchedMsg struct {
	status domain.SessionStatus
	err    error
}

// statusFetchModel shows a spinner for one session while its timer status
// is fetched, then quits holding the result.
type statusFetchModel struct {
	spinner   spinner.Model
	sessionID string
	fetch     tea.Cmd
	status    domain.SessionStatus
	err       error
	done      bool
}

func newStatusFetchModel(sessionID string, fetch tea.Cmd) statusFetchModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return statusFetchModel{spinner: s, sessionID: sessionID, fetch: fetch}
}

func (m statusFetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m statusFetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case statusFetchedMsg:
		m.done = true
		m.status = msg.status
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m statusFetchModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Fetching timer status for session %s...", m.spinner.View(), m.sessionID)
}

func fetchStatusWithSpinner(ctx context.Context, output io.Writer, sessionID string, fetch statusFetcher) (domain.SessionStatus, error) {
	fetchCmd := func() tea.Msg {
		status, err := fetch(ctx, sessionID)
		return statusFetchedMsg{status: status, err: err}
	}

	p := tea.NewProgram(
		newStatusFetchModel(sessionID, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.SessionStatus{}, err
	}

	result, ok := finalModel.(statusFetchModel)
	if !ok {
		return domain.SessionStatus{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.status, result.err
}
