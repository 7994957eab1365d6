package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timepaisa/internal/cli/formatter"
	"github.com/alexanderramin/timepaisa/internal/domain"
)

func newMoneyCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "Log and review spending",
	}

	cmd.AddCommand(
		newMoneyAddCmd(a),
		newMoneyListCmd(a),
		newMoneyRemoveCmd(a),
	)

	return cmd
}

func newMoneyAddCmd(a *App) *cobra.Command {
	var (
		category moneyCategoryFlag
		date     dateFlag
		amount   float64
		note     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log an amount spent on a category",
		Example: `  timepaisa money add --category Snacks --amount 250 --note "Vending machine"
  timepaisa money add --category Bills --amount 1200 --date 2023-10-02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.MoneyDraft{
				Category:    category.value,
				Amount:      amount,
				Date:        date.orToday(a),
				Description: note,
			}
			fmt.Fprint(cmd.OutOrStdout(), addMoneyEntry(cmd.Context(), a, draft))
			return nil
		},
	}

	cmd.Flags().Var(&category, "category", "Money category ("+moneyCategoryNames()+")")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount spent")
	cmd.Flags().Var(&date, "date", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&note, "note", "", "Optional description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func addMoneyEntry(ctx context.Context, a *App, draft domain.MoneyDraft) string {
	entry, ok := a.Dashboard.AddMoneyEntry(ctx, draft)
	if !ok {
		return formatter.FormatRejected("amount")
	}
	return formatter.FormatMoneyAdded(entry)
}

func newMoneyListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the money log, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMoneyEntries(a.Dashboard.MoneyEntries()))
			return nil
		},
	}
}

func newMoneyRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <#|id>",
		Aliases: []string{"remove"},
		Short:   "Remove a money entry by row number or ID",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.Dashboard.MoneyEntries()
			ids := make([]string, len(entries))
			for i, e := range entries {
				ids[i] = e.ID
			}
			id, err := resolveEntryID(args[0], ids)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatRemoved(a.Dashboard.RemoveMoneyEntry(cmd.Context(), id), id))
			return nil
		},
	}
}
