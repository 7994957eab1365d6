package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timepaisa/internal/app"
	"github.com/alexanderramin/timepaisa/internal/cli/formatter"
	"github.com/alexanderramin/timepaisa/internal/insight"
)

func newDashboardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "summary"},
		Short:   "Show totals per category and the daily trend",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(a.Dashboard.Summary(), a.Dashboard.LatestInsight()))
			return nil
		},
	}
}

func newAnalyzeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Ask the AI for a review of your logs",
		Long: `Sends per-category totals of the current logs to the configured model
and prints the review: a roast, a summary, productivity and financial
scores, a plan for next week and tips.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if a.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Analyzing...")
			}
			in, err := a.Dashboard.RequestInsight(cmd.Context())
			stop()

			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, app.ErrInsightInFlight):
				return err
			case err != nil:
				fmt.Fprint(out, formatter.FormatAnalysisFailed())
				return insight.ErrAnalysisFailed
			}
			fmt.Fprint(out, formatter.FormatInsight(in))
			return nil
		},
	}
}

func newInsightCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insight",
		Short: "Show the most recent AI review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.Dashboard.LatestInsight()
			if in == nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNoInsight())
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatInsight(in))
			return nil
		},
	}
}
