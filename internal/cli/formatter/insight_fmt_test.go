package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

func TestFormatInsight(t *testing.T) {
	out := plain(FormatInsight(&domain.AIInsight{
		Roast:             "Reels are not a personality.",
		Summary:           "Good study streak.",
		ProductivityScore: 64,
		FinancialScore:    71,
		NextWeekPlan:      []domain.DayPlan{{Day: "Monday", Focus: "Study 3h", Limit: "Reels 30m"}},
		Tips:              []string{"Cook at home"},
	}))

	assert.Contains(t, out, "Focus Score")
	assert.Contains(t, out, " 64%")
	assert.Contains(t, out, " 71%")
	assert.Contains(t, out, "THE VERDICT")
	assert.Contains(t, out, `"Reels are not a personality."`)
	assert.Contains(t, out, "Good study streak.")
	assert.Contains(t, out, "NEXT WEEK BLUEPRINT")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Reels 30m")
	assert.Contains(t, out, "• Cook at home")
}

func TestFormatInsight_EmptyLists(t *testing.T) {
	out := plain(FormatInsight(&domain.AIInsight{Roast: "r", Summary: "s"}))
	assert.Contains(t, out, "No plan suggested.")
	assert.Contains(t, out, "No tips this week.")
}

func TestFormatInsight_Nil(t *testing.T) {
	assert.Contains(t, plain(FormatInsight(nil)), "No analysis yet")
}

func TestFormatAnalysisFailed(t *testing.T) {
	assert.Contains(t, plain(FormatAnalysisFailed()), "AI Analysis failed")
}
