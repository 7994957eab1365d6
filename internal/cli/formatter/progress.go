package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%, coloured by ScoreStyle.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	bar := blocks(pct, width)
	return fmt.Sprintf("[%s] %3.0f%%", ScoreStyle(int(pct*100+0.5)).Render(bar), pct*100)
}

// RenderScore renders a 0-100 score as a progress bar.
func RenderScore(score, width int) string {
	return RenderProgress(float64(score)/100, width)
}

// RenderShareBar renders value/total as a bare bar in the given style, for
// per-category breakdowns.
func RenderShareBar(value, total float64, width int, style lipgloss.Style) string {
	pct := 0.0
	if total > 0 {
		pct = value / total
	}
	return style.Render(blocks(clamp01(pct), width))
}

func blocks(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)+0.5), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
