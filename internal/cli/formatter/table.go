package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

type column struct {
	width int
	right bool
}

// RenderTable lays out rows under a header and a dim rule. Widths are
// measured on visible text, so styled cells still line up.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableAligned(headers, rows, nil)
}

// RenderTableAligned is RenderTable with right-aligned columns wherever
// right[i] is true.
func RenderTableAligned(headers []string, rows [][]string, right []bool) string {
	if len(headers) == 0 {
		return ""
	}
	cols := layout(headers, rows, right)

	styled := make([]string, len(headers))
	rule := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h)
		rule[i] = StyleDim.Render(strings.Repeat("─", cols[i].width))
	}

	var b strings.Builder
	writeRow(&b, cols, styled)
	writeRow(&b, cols, rule)
	for _, row := range rows {
		writeRow(&b, cols, row)
	}
	return b.String()
}

func layout(headers []string, rows [][]string, right []bool) []column {
	cols := make([]column, len(headers))
	for i, h := range headers {
		cols[i] = column{width: lipgloss.Width(h), right: i < len(right) && right[i]}
	}
	for _, row := range rows {
		for i, v := range row {
			if i < len(cols) {
				cols[i].width = max(cols[i].width, lipgloss.Width(v))
			}
		}
	}
	return cols
}

// writeRow pads each cell to its column. Missing cells render blank and the
// last column carries no trailing padding.
func writeRow(b *strings.Builder, cols []column, row []string) {
	last := len(cols) - 1
	for i, col := range cols {
		var v string
		if i < len(row) {
			v = row[i]
		}
		pad := strings.Repeat(" ", max(col.width-lipgloss.Width(v), 0))
		switch {
		case col.right:
			b.WriteString(pad + v)
		case i == last:
			b.WriteString(v)
		default:
			b.WriteString(v + pad)
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteByte('\n')
}
