package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	statusadapter "github.com/mcarrasqub/itimer/internal/adapters/render/status"
	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/spf13/cobra"
)

type statusOutput struct {
	SessionID        string   `json:"session_id"`
	Status           string   `json:"status"`
	Message          string   `json:"message,omitempty"`
	RemainingSeconds *int     `json:"remaining_seconds,omitempty"`
	ElapsedSeconds   *int     `json:"elapsed_seconds,omitempty"`
	ProgressRatio    *float64 `json:"progress_ratio,omitempty"`
	Notification     string   `json:"notification,omitempty"`
}

func newStatusCmd(app *app) *cobra.Command {
	var sessionID string
	var total int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Fetch and display the session timer status once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := domain.NewSessionContext(sessionID, total)
			if err != nil {
				return err
			}
			return runStatus(cmd, app, session, asJSON)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID")
	cmd.Flags().IntVar(&total, "total", domain.DefaultTotalTimeAllowedSeconds, "Total time allowed in seconds")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func runStatus(cmd *cobra.Command, app *app, session domain.SessionContext, asJSON bool) error {
	client, err := app.newTimerClient(cmd.Context())
	if err != nil {
		return err
	}

	var status domain.SessionStatus
	if asJSON {
		status, err = client.FetchStatus(cmd.Context(), session.SessionID)
	} else {
		status, err = fetchStatusWithSpinner(cmd.Context(), cmd.ErrOrStderr(), session.SessionID, client.FetchStatus)
	}
	if err != nil {
		return err
	}

	if asJSON {
		return writeStatusJSON(cmd, session, status)
	}

	rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{
		SessionID:               session.SessionID,
		TotalTimeAllowedSeconds: session.TotalTimeAllowedSeconds,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(rendered, "\n"))
	return err
}

func writeStatusJSON(cmd *cobra.Command, session domain.SessionContext, status domain.SessionStatus) error {
	out := statusOutput{
		SessionID:        session.SessionID,
		Status:           string(status.Status),
		Message:          status.Message,
		RemainingSeconds: status.RemainingSeconds,
		ProgressRatio:    status.ProgressRatio,
	}
	if elapsed, ok := domain.ElapsedSeconds(status.RemainingSeconds, session.TotalTimeAllowedSeconds); ok {
		out.ElapsedSeconds = &elapsed
	}
	if status.HasMessage() {
		switch status.Status {
		case domain.TimerRunning:
			out.Notification = domain.FormatElapsed(status.Message, status.RemainingSeconds, session.TotalTimeAllowedSeconds)
		case domain.TimerEnded:
			out.Notification = domain.EndedMessage
		}
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}
