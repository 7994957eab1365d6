package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type usage struct{ cmd, desc string }

type usageGroup struct {
	name  string
	lines []usage
}

var welcomeHints = []usage{
	{"time add", "Log hours (form if no flags)"},
	{"money add", "Log spending (form if no flags)"},
	{"dashboard", "Totals, breakdowns and trend"},
	{"analyze", "Ask the AI to review your week"},
	{"help", "Show all commands"},
}

var shellReference = []usageGroup{
	{"Time", []usage{
		{"time add", "Log hours (--category --hours --date --note)"},
		{"time list", "Show the time log"},
		{"time rm <#|id>", "Remove a time entry"},
	}},
	{"Money", []usage{
		{"money add", "Log spending (--category --amount --date --note)"},
		{"money list", "Show the money log"},
		{"money rm <#|id>", "Remove a money entry"},
	}},
	{"Review", []usage{
		{"dashboard", "Totals, category breakdowns, daily trend"},
		{"analyze", "Run an AI analysis in the background"},
		{"insight", "Show the latest analysis"},
	}},
	{"Utilities", []usage{
		{"config show", "Print the effective configuration"},
		{"help", "Show this command reference"},
		{"clear", "Clear the screen"},
		{"exit / quit", "Leave the shell"},
	}},
}

// usageLines renders commands in a column padded to width.
func usageLines(b *strings.Builder, lines []usage, indent string, width int) {
	for _, u := range lines {
		name := StyleGreen.Render(u.cmd)
		pad := strings.Repeat(" ", max(width-lipgloss.Width(name), 1))
		b.WriteString(indent + name + pad + Dim(u.desc) + "\n")
	}
}

// FormatShellWelcome is the banner printed when the shell starts.
func FormatShellWelcome() string {
	var b strings.Builder
	b.WriteString("\n  " + StyleHeader.Render("Time Paisa Manager") + "\n")
	b.WriteString("  " + Dim("Master your week") + "\n")
	b.WriteString(StyleDim.Render("  "+strings.Repeat("─", 29)) + "\n\n")
	usageLines(&b, welcomeHints, "  ", 15)
	b.WriteString("\n" + Dim("  Type 'exit' or press Ctrl+C to quit.") + "\n")
	return b.String()
}

// FormatShellHelp is the grouped command reference shown by "help".
func FormatShellHelp() string {
	var b strings.Builder
	for _, g := range shellReference {
		b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(g.name)) + "\n")
		usageLines(&b, g.lines, "  ", 19)
	}
	return RenderBox("Commands", b.String())
}
