package application

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/ports"
)

const (
	DefaultEnterDuration   = 300 * time.Millisecond
	DefaultDisplayDuration = 10 * time.Second
	DefaultExitDuration    = 320 * time.Millisecond
)

type NotificationTimings struct {
	Enter   time.Duration
	Display time.Duration
	Exit    time.Duration
}

func DefaultNotificationTimings() NotificationTimings {
	return NotificationTimings{
		Enter:   DefaultEnterDuration,
		Display: DefaultDisplayDuration,
		Exit:    DefaultExitDuration,
	}
}

// NotificationQueue owns the live notification stack. Every entry drives
// its own lifecycle with a single pending timer.
type NotificationQueue struct {
	clock   ports.Clock
	timings NotificationTimings
	newID   func() string

	mu      sync.Mutex
	entries []*liveNotification
	closed  bool
	changes chan struct{}
}

type liveNotification struct {
	domain.Notification
	timer ports.Timer
}

var _ ports.Notifier = (*NotificationQueue)(nil)

func NewNotificationQueue(clock ports.Clock, timings NotificationTimings) *NotificationQueue {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if timings.Display <= 0 {
		timings.Display = DefaultDisplayDuration
	}
	if timings.Enter < 0 {
		timings.Enter = 0
	}
	if timings.Enter > timings.Display {
		timings.Enter = timings.Display
	}
	if timings.Exit < 0 {
		timings.Exit = 0
	}

	return &NotificationQueue{
		clock:   clock,
		timings: timings,
		newID:   uuid.NewString,
		changes: make(chan struct{}, 1),
	}
}

// Show appends a notification to the bottom of the stack. It is removed
// Display+Exit after creation.
func (q *NotificationQueue) Show(text string, kind domain.NotificationKind) domain.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := domain.Notification{
		ID:              q.newID(),
		Text:            text,
		Kind:            kind,
		CreatedAt:       q.clock.Now(),
		DisplayDuration: q.timings.Display,
		Phase:           domain.PhaseEntering,
	}
	if q.closed {
		n.Phase = domain.PhaseDisposed
		return n
	}

	entry := &liveNotification{Notification: n}
	q.entries = append(q.entries, entry)
	entry.timer = q.clock.AfterFunc(q.timings.Enter, func() { q.enterVisible(entry) })
	q.signalLocked()

	return n
}

func (q *NotificationQueue) enterVisible(entry *liveNotification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || entry.Phase != domain.PhaseEntering {
		return
	}
	entry.Phase = domain.PhaseVisible
	entry.timer = q.clock.AfterFunc(q.timings.Display-q.timings.Enter, func() { q.beginExit(entry) })
	q.signalLocked()
}

func (q *NotificationQueue) beginExit(entry *liveNotification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed || entry.Phase != domain.PhaseVisible {
		return
	}
	entry.Phase = domain.PhaseExiting
	entry.timer = q.clock.AfterFunc(q.timings.Exit, func() { q.dispose(entry) })
	q.signalLocked()
}

func (q *NotificationQueue) dispose(entry *liveNotification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if entry.Phase == domain.PhaseDisposed {
		return
	}
	entry.Phase = domain.PhaseDisposed
	entry.timer = nil
	for i, live := range q.entries {
		if live == entry {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			break
		}
	}
	q.signalLocked()
}

// Snapshot returns copies of the live entries, oldest first.
func (q *NotificationQueue) Snapshot() []domain.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]domain.Notification, 0, len(q.entries))
	for _, entry := range q.entries {
		out = append(out, entry.Notification)
	}
	return out
}

func (q *NotificationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Changes signals after any stack mutation. Signals coalesce; readers should
// take a fresh Snapshot on every receive.
func (q *NotificationQueue) Changes() <-chan struct{} {
	return q.changes
}

// Close stops every pending timer and drops the stack. Later Show calls
// return already-disposed entries.
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	for _, entry := range q.entries {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		entry.Phase = domain.PhaseDisposed
	}
	q.entries = nil
	q.signalLocked()
}

func (q *NotificationQueue) signalLocked() {
	select {
	case q.changes <- struct{}{}:
	default:
	}
}
