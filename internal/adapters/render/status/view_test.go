package status

import (
	"testing"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRunningSession(t *testing.T) {
	remaining := 600
	ratio := 0.333

	output, err := Render(domain.SessionStatus{
		Status:           domain.TimerRunning,
		Message:          "Sigue así",
		RemainingSeconds: &remaining,
		ProgressRatio:    &ratio,
	}, RenderOptions{SessionID: "42", TotalTimeAllowedSeconds: 900})

	require.NoError(t, err)
	assert.Contains(t, output, "Interview Session Timer")
	assert.Contains(t, output, "session: 42")
	assert.Contains(t, output, "RUNNING")
	assert.Contains(t, output, "Sigue así")
	assert.Contains(t, output, "remaining: 10:00")
	assert.Contains(t, output, "elapsed: 05:00")
	assert.Contains(t, output, " 33%")
	assert.Contains(t, output, "[")
	assert.Contains(t, output, "]")
}

func TestRenderSessionWithoutOptionalFields(t *testing.T) {
	output, err := Render(domain.SessionStatus{Status: domain.TimerPaused}, RenderOptions{SessionID: "7"})

	require.NoError(t, err)
	assert.Contains(t, output, "PAUSED")
	assert.Contains(t, output, "No message from the coach.")
	assert.Contains(t, output, "remaining: n/a")
	assert.NotContains(t, output, "progress:")
}

func TestRenderUnknownState(t *testing.T) {
	output, err := Render(domain.SessionStatus{}, RenderOptions{SessionID: "7"})

	require.NoError(t, err)
	assert.Contains(t, output, "status: UNKNOWN")
}

func TestRenderProgressBarClampsRatio(t *testing.T) {
	s := newStyles()

	tests := []struct {
		name    string
		percent float64
		filled  int
	}{
		{name: "empty", percent: -20, filled: 0},
		{name: "half", percent: 50, filled: 12},
		{name: "overflow", percent: 140, filled: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderProgressBar(tt.percent, progressBarWidth, s)
			assert.Equal(t, tt.filled, countRune(bar, '='))
			assert.Equal(t, progressBarWidth-tt.filled, countRune(bar, '-'))
		})
	}
}

func TestInterpolateColor(t *testing.T) {
	assert.Equal(t, "240", string(interpolateColor(0, 0, 100)))
	assert.Equal(t, "255", string(interpolateColor(100, 0, 100)))
	assert.Equal(t, "255", string(interpolateColor(5, 3, 3)))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
