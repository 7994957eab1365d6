package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timepaisa/internal/aggregate"
	"github.com/alexanderramin/timepaisa/internal/domain"
)

const shareBarWidth = 20

// FormatDashboard renders the stat line, the per-category breakdowns and the
// daily series. latest may be nil.
func FormatDashboard(s aggregate.Summary, latest *domain.AIInsight) string {
	var b strings.Builder

	b.WriteString(formatStats(s, latest))
	b.WriteString("\n\n")

	b.WriteString(Header("Time Allocation"))
	b.WriteString("\n")
	b.WriteString(formatBreakdown(aggregate.SortedTotals(s.TimeTotals), s.TotalHours, FormatHours, func(label string) string {
		return TimeCategoryStyle(domain.TimeCategory(label)).Render(label)
	}, func(label string, v, total float64) string {
		return RenderShareBar(v, total, shareBarWidth, TimeCategoryStyle(domain.TimeCategory(label)))
	}))
	b.WriteString("\n")

	b.WriteString(Header("Spending"))
	b.WriteString("\n")
	b.WriteString(formatBreakdown(aggregate.SortedTotals(s.MoneyTotals), s.TotalSpent, FormatAmount, func(label string) string {
		return MoneyCategoryStyle(domain.MoneyCategory(label)).Render(label)
	}, func(label string, v, total float64) string {
		return RenderShareBar(v, total, shareBarWidth, MoneyCategoryStyle(domain.MoneyCategory(label)))
	}))
	b.WriteString("\n")

	b.WriteString(Header("Daily Trend"))
	b.WriteString("\n")
	b.WriteString(FormatDailySeries(s.Daily))

	return b.String()
}

func formatStats(s aggregate.Summary, latest *domain.AIInsight) string {
	productivity, financial := Dim("---"), Dim("---")
	if latest != nil {
		productivity = ScoreStyle(latest.ProductivityScore).Render(fmt.Sprintf("%d%%", latest.ProductivityScore))
		financial = ScoreStyle(latest.FinancialScore).Render(fmt.Sprintf("%d%%", latest.FinancialScore))
	}
	parts := []string{
		Dim("Expenses ") + StyleRed.Render(FormatAmount(s.TotalSpent)),
		Dim("Time Logged ") + StyleBlue.Render(FormatHours(s.TotalHours)),
		Dim("Productivity ") + productivity,
		Dim("Fin. Health ") + financial,
	}
	return strings.Join(parts, Dim("  │  "))
}

func formatBreakdown(
	rows []aggregate.CategoryTotal,
	total float64,
	value func(float64) string,
	label func(string) string,
	bar func(string, float64, float64) string,
) string {
	if len(rows) == 0 {
		return Dim("Nothing logged.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			label(r.Category),
			bar(r.Category, r.Total, total),
			value(r.Total),
		})
	}
	return RenderTableAligned([]string{"CATEGORY", "SHARE", "TOTAL"}, table, []bool{false, false, true})
}

// FormatDailySeries renders one row per date in ascending order.
func FormatDailySeries(points []aggregate.DayPoint) string {
	if len(points) == 0 {
		return Dim("No activity yet.") + "\n"
	}
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Date, FormatHours(p.Hours), FormatAmount(p.Spent)})
	}
	return RenderTableAligned([]string{"DATE", "TIME", "MONEY"}, rows, []bool{false, true, true})
}
