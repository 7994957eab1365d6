package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timepaisa/internal/cli/formatter"
	"github.com/alexanderramin/timepaisa/internal/domain"
)

func newTimeCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Log and review time entries",
	}

	cmd.AddCommand(
		newTimeAddCmd(a),
		newTimeListCmd(a),
		newTimeRemoveCmd(a),
	)

	return cmd
}

func newTimeAddCmd(a *App) *cobra.Command {
	var (
		category timeCategoryFlag
		date     dateFlag
		hours    float64
		note     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log hours spent on a category",
		Example: `  timepaisa time add --category Study --hours 2.5 --note "Go generics"
  timepaisa time add --category Reels --hours 1 --date 2023-10-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.TimeDraft{
				Category:    category.value,
				Hours:       hours,
				Date:        date.orToday(a),
				Description: note,
			}
			fmt.Fprint(cmd.OutOrStdout(), addTimeEntry(cmd.Context(), a, draft))
			return nil
		},
	}

	cmd.Flags().Var(&category, "category", "Time category ("+timeCategoryNames()+")")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours spent")
	cmd.Flags().Var(&date, "date", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&note, "note", "", "Optional description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

// addTimeEntry stores draft and returns the confirmation or rejection notice.
func addTimeEntry(ctx context.Context, a *App, draft domain.TimeDraft) string {
	entry, ok := a.Dashboard.AddTimeEntry(ctx, draft)
	if !ok {
		return formatter.FormatRejected("hours")
	}
	return formatter.FormatTimeAdded(entry)
}

func newTimeListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the time log, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeEntries(a.Dashboard.TimeEntries()))
			return nil
		},
	}
}

func newTimeRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <#|id>",
		Aliases: []string{"remove"},
		Short:   "Remove a time entry by row number or ID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.Dashboard.TimeEntries()
			ids := make([]string, len(entries))
			for i, e := range entries {
				ids[i] = e.ID
			}
			id, err := resolveEntryID(args[0], ids)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatRemoved(a.Dashboard.RemoveTimeEntry(cmd.Context(), id), id))
			return nil
		},
	}
}

func formatRemoved(removed bool, id string) string {
	if !removed {
		return formatter.Dim(fmt.Sprintf("No entry with ID %s.", id)) + "\n"
	}
	return fmt.Sprintf("%s Removed %s\n", formatter.StyleGreen.Render("✔"), formatter.Dim(id))
}
