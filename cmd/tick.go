package cmd

import (
	"fmt"

	"github.com/mcarrasqub/itimer/internal/application"
	"github.com/mcarrasqub/itimer/internal/domain"
	"github.com/spf13/cobra"
)

func newTickCmd(app *app) *cobra.Command {
	var sessionID string
	var seconds int

	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Report elapsed seconds for a session once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := domain.NewSessionContext(sessionID, 0)
			if err != nil {
				return err
			}
			if seconds <= 0 {
				return fmt.Errorf("invalid --seconds %d: must be positive", seconds)
			}

			client, err := app.newTimerClient(cmd.Context())
			if err != nil {
				return err
			}

			reply, err := client.ReportTick(cmd.Context(), session.SessionID, seconds, client.CSRFToken())
			if err != nil {
				return err
			}

			line := fmt.Sprintf("tick reported: success=%t status=%s", reply.Success, reply.Status)
			if reply.ProgressRatio != nil {
				line += fmt.Sprintf(" progress=%.0f%%", *reply.ProgressRatio*100)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID")
	cmd.Flags().IntVar(&seconds, "seconds", application.DefaultTickSeconds, "Seconds to report")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}
