package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timepaisa/internal/cli/formatter"
	"github.com/alexanderramin/timepaisa/internal/domain"
)

// formResult is run when a form completes and returns the text to print.
type formResult func(ctx context.Context) string

// huhTheme styles forms with the dashboard palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// timeEntryForm asks for the fields of a time entry and stores it on
// completion.
func timeEntryForm(a *App) (*huh.Form, formResult) {
	var (
		category = domain.TimeStudy
		hours    string
		date     = domain.Today(a.now())
		note     string
	)

	options := make([]huh.Option[domain.TimeCategory], 0, len(domain.AllTimeCategories()))
	for _, c := range domain.AllTimeCategories() {
		options = append(options, huh.NewOption(c.String(), c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.TimeCategory]().
				Title("Category").
				Options(options...).
				Value(&category),
			huh.NewInput().
				Title("Hours").
				Placeholder("1.5").
				Value(&hours).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Date").
				Placeholder(date).
				Value(&date).
				Validate(validateDate),
			huh.NewInput().
				Title("Note (optional)").
				Value(&note),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)

	done := func(ctx context.Context) string {
		d, _ := domain.ParseDate(date)
		return addTimeEntry(ctx, a, domain.TimeDraft{
			Category:    category,
			Hours:       parseNumber(hours),
			Date:        d,
			Description: strings.TrimSpace(note),
		})
	}
	return form, done
}

// moneyEntryForm is the money counterpart of timeEntryForm.
func moneyEntryForm(a *App) (*huh.Form, formResult) {
	var (
		category = domain.MoneyFood
		amount   string
		date     = domain.Today(a.now())
		note     string
	)

	options := make([]huh.Option[domain.MoneyCategory], 0, len(domain.AllMoneyCategories()))
	for _, c := range domain.AllMoneyCategories() {
		options = append(options, huh.NewOption(c.String(), c))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.MoneyCategory]().
				Title("Category").
				Options(options...).
				Value(&category),
			huh.NewInput().
				Title("Amount (" + formatter.CurrencySymbol + ")").
				Placeholder("250").
				Value(&amount).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Date").
				Placeholder(date).
				Value(&date).
				Validate(validateDate),
			huh.NewInput().
				Title("Note (optional)").
				Value(&note),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)

	done := func(ctx context.Context) string {
		d, _ := domain.ParseDate(date)
		return addMoneyEntry(ctx, a, domain.MoneyDraft{
			Category:    category,
			Amount:      parseNumber(amount),
			Date:        d,
			Description: strings.TrimSpace(note),
		})
	}
	return form, done
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a number greater than zero")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// parseNumber converts an already validated input. Invalid input yields 0,
// which the store rejects.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
