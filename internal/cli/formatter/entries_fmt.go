package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

// FormatTimeEntries renders the time log, most recent first. The # column is
// the row number accepted by "time rm".
func FormatTimeEntries(entries []domain.TimeEntry) string {
	if len(entries) == 0 {
		return Dim("No time logged yet. Add one with 'time add'.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			TruncID(e.ID),
			TimeCategoryStyle(e.Category).Render(e.Category.String()),
			FormatHours(e.Hours),
			e.Date,
			OrDash(e.Description),
		})
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Time Logs (%d)", len(entries))))
	b.WriteString("\n")
	b.WriteString(RenderTableAligned(
		[]string{"#", "ID", "CATEGORY", "HOURS", "DATE", "NOTE"},
		rows,
		[]bool{true, false, false, true},
	))
	return b.String()
}

// FormatMoneyEntries renders the money log, most recent first.
func FormatMoneyEntries(entries []domain.MoneyEntry) string {
	if len(entries) == 0 {
		return Dim("No spending logged yet. Add one with 'money add'.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			TruncID(e.ID),
			MoneyCategoryStyle(e.Category).Render(e.Category.String()),
			FormatAmount(e.Amount),
			e.Date,
			OrDash(e.Description),
		})
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Money Logs (%d)", len(entries))))
	b.WriteString("\n")
	b.WriteString(RenderTableAligned(
		[]string{"#", "ID", "CATEGORY", "AMOUNT", "DATE", "NOTE"},
		rows,
		[]bool{true, false, false, true},
	))
	return b.String()
}

// FormatTimeAdded confirms a stored time entry.
func FormatTimeAdded(e domain.TimeEntry) string {
	return fmt.Sprintf("%s Logged %s of %s on %s %s\n",
		StyleGreen.Render("✔"),
		Bold(FormatHours(e.Hours)),
		TimeCategoryStyle(e.Category).Render(e.Category.String()),
		e.Date,
		Dim("("+e.ID+")"))
}

// FormatMoneyAdded confirms a stored money entry.
func FormatMoneyAdded(e domain.MoneyEntry) string {
	return fmt.Sprintf("%s Logged %s on %s on %s %s\n",
		StyleGreen.Render("✔"),
		Bold(FormatAmount(e.Amount)),
		MoneyCategoryStyle(e.Category).Render(e.Category.String()),
		e.Date,
		Dim("("+e.ID+")"))
}

// FormatRejected explains why a draft was not stored.
func FormatRejected(field string) string {
	return StyleYellow.Render("!") + " " + Dim(fmt.Sprintf("Nothing logged: %s must be greater than zero.", field)) + "\n"
}
