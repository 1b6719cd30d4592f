package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/ports"
)

const (
	DefaultPollInterval = 8 * time.Second
	DefaultStartupDelay = 2 * time.Second
)

var (
	errNilStatusSource = errors.New("status source is nil")
	errNilNotifier     = errors.New("notifier is nil")
	errNilTicks        = errors.New("tick dispatcher is nil")
)

type PollerConfig struct {
	PollInterval time.Duration
	StartupDelay time.Duration
	TickSeconds  int
	// StopOnEnded ends the loop after the first ENDED notification.
	StopOnEnded bool
}

func DefaultPollerConfig() PollerConfig {
	return PollerConfig{
		PollInterval: DefaultPollInterval,
		StartupDelay: DefaultStartupDelay,
		TickSeconds:  DefaultTickSeconds,
	}
}

type PollerDeps struct {
	Status   ports.StatusSource
	Tokens   ports.TokenSource
	Ticks    *TickDispatcher
	Notifier ports.Notifier
	Dedupe   *DedupeCache
	Clock    ports.Clock
	Logger   *slog.Logger
	// Observe, when set, receives every cycle outcome on the loop goroutine.
	// It must not block.
	Observe func(CycleOutcome)
}

// CycleOutcome describes what one poll cycle did.
type CycleOutcome struct {
	Status         domain.SessionStatus
	Text           string
	Notified       bool
	Suppressed     bool
	TickDispatched bool
	Err            error
}

func (o CycleOutcome) Ended() bool {
	return o.Err == nil && o.Status.Status == domain.TimerEnded && o.Notified
}

type Poller struct {
	status   ports.StatusSource
	tokens   ports.TokenSource
	ticks    *TickDispatcher
	notifier ports.Notifier
	dedupe   *DedupeCache
	clock    ports.Clock
	logger   *slog.Logger
	observe  func(CycleOutcome)
	cfg      PollerConfig
}

func NewPoller(deps PollerDeps, cfg PollerConfig) (*Poller, error) {
	if deps.Status == nil {
		return nil, errNilStatusSource
	}
	if deps.Notifier == nil {
		return nil, errNilNotifier
	}
	if deps.Ticks == nil {
		return nil, errNilTicks
	}
	if deps.Dedupe == nil {
		deps.Dedupe = NewDedupeCache(DefaultDedupeWindow, DefaultDedupeHighWater)
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	defaults := DefaultPollerConfig()
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaults.PollInterval
	}
	if cfg.StartupDelay < 0 {
		cfg.StartupDelay = 0
	}
	if cfg.TickSeconds <= 0 {
		cfg.TickSeconds = defaults.TickSeconds
	}

	return &Poller{
		status:   deps.Status,
		tokens:   deps.Tokens,
		ticks:    deps.Ticks,
		notifier: deps.Notifier,
		dedupe:   deps.Dedupe,
		clock:    deps.Clock,
		logger:   deps.Logger,
		observe:  deps.Observe,
		cfg:      cfg,
	}, nil
}

// Start runs the poll loop until ctx is done or the task is canceled. The
// first cycle runs after StartupDelay; each later cycle runs PollInterval
// after the previous one finished, so cycles never overlap.
func (p *Poller) Start(ctx context.Context, session domain.SessionContext) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := newTask(cancel)

	go func() {
		defer task.finish()

		if !p.sleep(ctx, p.cfg.StartupDelay) {
			return
		}
		for {
			outcome := p.RunCycle(ctx, session)
			if p.observe != nil {
				p.observe(outcome)
			}
			if outcome.Ended() && p.cfg.StopOnEnded {
				p.logger.Info("poll_loop_stopped", slog.String("session", session.SessionID), slog.String("reason", "ended"))
				return
			}
			if !p.sleep(ctx, p.cfg.PollInterval) {
				return
			}
		}
	}()

	return task
}

// RunCycle performs one fetch-decide-act pass. It never fails; errors are
// reported in the outcome and logged at debug.
func (p *Poller) RunCycle(ctx context.Context, session domain.SessionContext) CycleOutcome {
	status, err := p.status.FetchStatus(ctx, session.SessionID)
	if err != nil {
		p.logger.Debug("status_poll_failed", slog.String("session", session.SessionID), slog.String("error", err.Error()))
		return CycleOutcome{Err: err}
	}

	outcome := CycleOutcome{Status: status}
	if !status.HasMessage() {
		return outcome
	}

	switch status.Status {
	case domain.TimerRunning:
		now := p.clock.Now()
		if p.dedupe.ShouldShow(status.Message, now) {
			outcome.Text = domain.FormatElapsed(status.Message, status.RemainingSeconds, session.TotalTimeAllowedSeconds)
			p.notifier.Show(outcome.Text, domain.NotificationInfo)
			p.dedupe.Record(status.Message, now)
			outcome.Notified = true
		} else {
			outcome.Suppressed = true
		}

		p.ticks.Dispatch(ctx, session.SessionID, p.cfg.TickSeconds, p.csrfToken())
		outcome.TickDispatched = true
	case domain.TimerPaused:
		p.logger.Debug("session_paused", slog.String("session", session.SessionID))
	case domain.TimerEnded:
		outcome.Text = domain.EndedMessage
		p.notifier.Show(domain.EndedMessage, domain.NotificationWarning)
		outcome.Notified = true
	default:
		p.logger.Debug("status_unknown", slog.String("session", session.SessionID), slog.String("status", string(status.Status)))
	}

	return outcome
}

func (p *Poller) csrfToken() string {
	if p.tokens == nil {
		return ""
	}
	return p.tokens.CSRFToken()
}

func (p *Poller) sleep(ctx context.Context, d time.Duration) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	if d <= 0 {
		return true
	}

	fired := make(chan struct{})
	timer := p.clock.AfterFunc(d, func() { close(fired) })
	select {
	case <-ctx.Done():
		timer.Stop()
		return false
	case <-fired:
		return true
	}
}
