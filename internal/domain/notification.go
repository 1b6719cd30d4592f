package domain

import "time"

type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
)

// EndedMessage is shown every time an ENDED status is observed.
const EndedMessage = "Tu práctica ha finalizado. Revisa la evaluación cuando esté lista."

func (k NotificationKind) Title() string {
	if k == NotificationWarning {
		return "Consejo"
	}
	return "Motivación"
}

type NotificationPhase int

const (
	PhaseEntering NotificationPhase = iota
	PhaseVisible
	PhaseExiting
	PhaseDisposed
)

func (p NotificationPhase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	case PhaseDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

type Notification struct {
	ID              string
	Text            string
	Kind            NotificationKind
	CreatedAt       time.Time
	DisplayDuration time.Duration
	Phase           NotificationPhase
}
