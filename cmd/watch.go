package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/mcarrasqub/itimer/internal/adapters/render/toast"
	"github.com/mcarrasqub/itimer/internal/adapters/sessionctx"
	"github.com/mcarrasqub/itimer/internal/application"
	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/mcarrasqub/itimer/internal/logging"
	"github.com/spf13/cobra"
)

const outcomeBuffer = 16

type watchOptions struct {
	contextPath string
	sessionID   string
	total       int
	plain       bool
}

func newWatchCmd(app *app) *cobra.Command {
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the session timer and show coaching notifications",
		Long: "watch polls the session timer status, shows the coach's messages with the elapsed time, " +
			"and reports a tick to the backend on every running cycle. It does nothing when no session is known.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.contextPath, "context", "", "Session context file (JSON, or TOML by extension)")
	cmd.Flags().StringVar(&opts.sessionID, "session", "", "Session ID (overrides the context file)")
	cmd.Flags().IntVar(&opts.total, "total", 0, "Total time allowed in seconds (default 900, overrides the context file)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print notifications as plain lines instead of the terminal UI")

	return cmd
}

func runWatch(cmd *cobra.Command, app *app, opts watchOptions) error {
	useTUI := !opts.plain && isTerminal(cmd.OutOrStdout())

	var logFallback io.Writer = cmd.ErrOrStderr()
	if useTUI {
		logFallback = io.Discard
	}
	baseLogger, closer, err := app.newLogger(logFallback)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	logger := logging.ForComponent(baseLogger, logging.CompCLI)

	session, err := resolveSession(opts)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			logger.Debug("no_session_context")
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := app.newTimerClient(ctx)
	if err != nil {
		return err
	}

	queue := application.NewNotificationQueue(app.clock, application.NotificationTimings{
		Enter:   app.cfg.Notifications.Enter,
		Display: app.cfg.Notifications.Display,
		Exit:    app.cfg.Notifications.Exit,
	})
	defer queue.Close()

	ticks := application.NewTickDispatcher(client, logging.ForComponent(baseLogger, logging.CompTick))
	outcomes := make(chan application.CycleOutcome, outcomeBuffer)
	poller, err := application.NewPoller(application.PollerDeps{
		Status:   client,
		Tokens:   client,
		Ticks:    ticks,
		Notifier: queue,
		Dedupe:   application.NewDedupeCache(app.cfg.Dedupe.Window, app.cfg.Dedupe.HighWater),
		Clock:    app.clock,
		Logger:   logging.ForComponent(baseLogger, logging.CompPoller),
		Observe: func(outcome application.CycleOutcome) {
			select {
			case outcomes <- outcome:
			default:
			}
		},
	}, application.PollerConfig{
		PollInterval: app.cfg.Poller.PollInterval,
		StartupDelay: app.cfg.Poller.StartupDelay,
		TickSeconds:  app.cfg.Poller.TickSeconds,
		StopOnEnded:  app.cfg.Poller.StopOnEnded,
	})
	if err != nil {
		return err
	}

	logger.Info("watch_started",
		slog.String("session", session.SessionID),
		slog.Int("total_time_allowed", session.TotalTimeAllowedSeconds),
		slog.Bool("tui", useTUI),
	)

	task := poller.Start(ctx, session)
	defer func() {
		task.Cancel()
		task.Wait()
		ticks.Wait()
	}()

	if useTUI {
		return toast.Run(ctx, toast.Options{
			Source:   queue,
			Outcomes: outcomes,
			Done:     task.Done(),
			Cancel:   task.Cancel,
			Session:  session,
		}, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return toast.RunPlain(ctx, queue, task.Done(), cmd.OutOrStdout())
}

// resolveSession reads the context file, if any, then applies flag
// overrides.
func resolveSession(opts watchOptions) (domain.SessionContext, error) {
	sessionID := opts.sessionID
	total := opts.total

	if opts.contextPath != "" {
		fromFile, err := sessionctx.Load(opts.contextPath)
		if err != nil && !errors.Is(err, domain.ErrNoSession) {
			return domain.SessionContext{}, err
		}
		if sessionID == "" {
			sessionID = fromFile.SessionID
		}
		if total <= 0 {
			total = fromFile.TotalTimeAllowedSeconds
		}
	}

	return domain.NewSessionContext(sessionID, total)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
