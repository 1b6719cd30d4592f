package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcarrasqub/itimer/internal/ports"
)

const DefaultTickSeconds = 8

// TickDispatcher sends ticks at most once and never reports failure to the
// caller. Dispatch returns immediately; the request runs on its own
// goroutine and outlives cancellation of the dispatching context.
type TickDispatcher struct {
	reporter ports.TickReporter
	logger   *slog.Logger
	inflight sync.WaitGroup
}

func NewTickDispatcher(reporter ports.TickReporter, logger *slog.Logger) *TickDispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &TickDispatcher{reporter: reporter, logger: logger}
}

func (d *TickDispatcher) Dispatch(ctx context.Context, sessionID string, secondsPassed int, csrfToken string) {
	detached := context.WithoutCancel(ctx)

	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		reply, err := d.reporter.ReportTick(detached, sessionID, secondsPassed, csrfToken)
		if err != nil {
			d.logger.Debug("tick_report_failed",
				slog.String("session", sessionID),
				slog.Int("seconds_passed", secondsPassed),
				slog.String("error", err.Error()),
			)
			return
		}

		d.logger.Debug("tick_reported",
			slog.String("session", sessionID),
			slog.Int("seconds_passed", secondsPassed),
			slog.Bool("success", reply.Success),
			slog.String("status", reply.Status),
		)
	}()
}

// Wait blocks until every dispatched tick has finished.
func (d *TickDispatcher) Wait() {
	d.inflight.Wait()
}
