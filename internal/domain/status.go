package domain

import "strings"

type TimerState string

const (
	TimerRunning TimerState = "RUNNING"
	TimerPaused  TimerState = "PAUSED"
	TimerEnded   TimerState = "ENDED"
)

// ParseTimerState normalizes a backend status label. Unknown labels are kept
// verbatim so callers can log them.
func ParseTimerState(raw string) TimerState {
	return TimerState(strings.ToUpper(strings.TrimSpace(raw)))
}

func (s TimerState) Known() bool {
	switch s {
	case TimerRunning, TimerPaused, TimerEnded:
		return true
	default:
		return false
	}
}

// SessionStatus is one snapshot of the backend timer. It is never mutated
// after decoding.
type SessionStatus struct {
	Status           TimerState
	Message          string
	RemainingSeconds *int
	ProgressRatio    *float64
}

func (s SessionStatus) HasMessage() bool {
	return strings.TrimSpace(s.Message) != ""
}

// TickReply is the backend answer to a tick. Only used for logging.
type TickReply struct {
	Success       bool
	Status        string
	Message       string
	ProgressRatio *float64
}
