package cmd

import (
	"fmt"
	"strings"

	"github.com/mcarrasqub/itimer/internal/application"
	"github.com/spf13/cobra"
)

func newCookieCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cookie",
		Short: "Manage the backend session cookies",
		Long:  "cookie stores the backend cookies (" + strings.Join(application.KnownCookies, ", ") + ") in pass, falling back to a local file.",
	}

	cmd.AddCommand(newCookieSetCmd(app), newCookieGetCmd(app), newCookieRemoveCmd(app))

	return cmd
}

func newCookieSetCmd(app *app) *cobra.Command {
	var name string
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a cookie value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.cookies.Set(cmd.Context(), name, value)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Cookie name")
	cmd.Flags().StringVar(&value, "value", "", "Cookie value")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newCookieGetCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print a stored cookie value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := app.cookies.Get(cmd.Context(), name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Cookie name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCookieRemoveCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a stored cookie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.cookies.Remove(cmd.Context(), name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Cookie name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
