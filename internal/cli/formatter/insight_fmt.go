package formatter

import (
	"strings"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

const scoreBarWidth = 20

// FormatInsight renders an analysis: scores, verdict, plan and tips.
func FormatInsight(in *domain.AIInsight) string {
	if in == nil {
		return FormatNoInsight()
	}
	var b strings.Builder

	b.WriteString(Bold("Focus Score    ") + RenderScore(in.ProductivityScore, scoreBarWidth) + "\n")
	b.WriteString(Bold("Pocket Health  ") + RenderScore(in.FinancialScore, scoreBarWidth) + "\n\n")

	verdict := StyleFg.Italic(true).Render(`"`+in.Roast+`"`) + "\n\n" + Dim(in.Summary)
	b.WriteString(RenderBox("The Verdict", verdict))
	b.WriteString("\n\n")

	b.WriteString(Header("Next Week Blueprint"))
	b.WriteString("\n")
	if len(in.NextWeekPlan) == 0 {
		b.WriteString(Dim("No plan suggested.") + "\n")
	} else {
		rows := make([][]string, 0, len(in.NextWeekPlan))
		for _, p := range in.NextWeekPlan {
			rows = append(rows, []string{Bold(p.Day), p.Focus, StyleGreen.Render(p.Limit)})
		}
		b.WriteString(RenderTable([]string{"DAY", "FOCUS", "TARGET"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header("Tips"))
	b.WriteString("\n")
	if len(in.Tips) == 0 {
		b.WriteString(Dim("No tips this week.") + "\n")
	}
	for _, tip := range in.Tips {
		b.WriteString(StyleBlue.Render("•") + " " + tip + "\n")
	}
	return b.String()
}

// FormatNoInsight is shown before the first successful analysis.
func FormatNoInsight() string {
	return Dim("No analysis yet. Run 'analyze' to get your weekly review.") + "\n"
}

// FormatAnalysisFailed is the single message shown for any failed analysis.
func FormatAnalysisFailed() string {
	return StyleRed.Render("✖") + " AI Analysis failed. Check your API key or try again later.\n"
}
