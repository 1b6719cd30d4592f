package status

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcarrasqub/itimer/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	status domain.SessionStatus
	opts   RenderOptions
	styles styles
	output string
}

func newModel(status domain.SessionStatus, opts RenderOptions) model {
	return model{
		status: status,
		opts:   opts,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.status, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out one session status through a headless bubbletea program.
func Render(status domain.SessionStatus, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(status, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
