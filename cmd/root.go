package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "itimer",
		Short:         "Interview session timer companion",
		Long:          "itimer watches a practice interview session: it polls the timer status, shows coaching notifications with the elapsed time, and reports timer ticks back to the backend.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newWatchCmd(app),
		newStatusCmd(app),
		newTickCmd(app),
		newCookieCmd(app),
	)

	return rootCmd
}
