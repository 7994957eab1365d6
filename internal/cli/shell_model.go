package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timepaisa/internal/app"
	"github.com/alexanderramin/timepaisa/internal/cli/formatter"
	"github.com/alexanderramin/timepaisa/internal/domain"
)

type shellMode int

const (
	modePrompt shellMode = iota // Normal command input.
	modeForm                    // huh form is active.
)

// analysisDoneMsg carries the result of a background analysis.
type analysisDoneMsg struct {
	insight *domain.AIInsight
	err     error
}

// shellModel is the bubbletea Model for the interactive shell.
type shellModel struct {
	input   textinput.Model
	spinner spinner.Model
	form    *huh.Form
	width   int

	app     *App
	history *shellHistory

	mode     shellMode
	formDone formResult

	// analyzing is set while an analysis started from this shell runs.
	analyzing bool
	quitting  bool
}

func newShellModel(a *App, historyPath string) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Up/Down walk the history; suggestions cycle with ctrl+n/ctrl+p.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleGreen

	return shellModel{
		input:   ti,
		spinner: sp,
		app:     a,
		history: openShellHistory(historyPath),
	}
}

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updatePrompt(msg)

	case analysisDoneMsg:
		if !errors.Is(msg.err, app.ErrInsightInFlight) {
			m.analyzing = false
		}
		return m, tea.Println(formatAnalysisResult(msg))

	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Forms need their own init and focus messages.
	if m.mode == modeForm && m.form != nil {
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	if m.mode == modeForm && m.form != nil {
		return m.form.View()
	}

	line := m.promptPrefix() + m.input.View()
	if m.analyzing {
		return m.spinner.View() + " " + formatter.Dim("Analyzing your week...") + "\n" + line
	}
	return line
}

func (m shellModel) promptPrefix() string {
	return formatter.StyleGreen.Render("timepaisa") + " " + formatter.Dim("❯") + " "
}

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if line == "" {
			return m, nil
		}
		m.history.add(line)

		output, cmd := m.executeCommand(line)
		var cmds []tea.Cmd
		if output != "" {
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyUp:
		if line, ok := m.history.prev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		m.input.SetValue(m.history.next())
		m.input.CursorEnd()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

func (m *shellModel) startForm(form *huh.Form, done formResult) tea.Cmd {
	m.mode = modeForm
	m.form = form
	m.formDone = done
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	return m.form.Init()
}

func (m shellModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.formDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		done := m.formDone
		m.mode = modePrompt
		m.form = nil
		m.formDone = nil
		if done == nil {
			return m, cmd
		}
		return m, tea.Batch(cmd, tea.Println(strings.TrimRight(done(context.Background()), "\n")))
	case huh.StateAborted:
		m.mode = modePrompt
		m.form = nil
		m.formDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}
	return m, cmd
}

// executeCommand runs one shell line and returns the text to print plus an
// optional follow-up command.
func (m *shellModel) executeCommand(line string) (string, tea.Cmd) {
	parts, err := splitShellArgs(line)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	name := strings.ToLower(parts[0])
	args := parts[1:]

	switch name {
	case "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "help":
		if len(args) > 0 {
			return captureCobraOutput(context.Background(), m.app, parts), nil
		}
		return formatter.FormatShellHelp(), nil
	case "clear":
		return "\033[H\033[2J", nil
	case "shell":
		return formatter.StyleYellow.Render("Already in shell mode."), nil
	case "analyze":
		return m.startAnalysis()
	case "time", "money":
		if len(args) == 1 && strings.EqualFold(args[0], "add") {
			form, done := timeEntryForm(m.app)
			if name == "money" {
				form, done = moneyEntryForm(m.app)
			}
			return "", m.startForm(form, done)
		}
	}
	return captureCobraOutput(context.Background(), m.app, parts), nil
}

// startAnalysis runs the analysis in the background so the prompt stays
// usable. A second request while one runs is refused by the dashboard.
func (m *shellModel) startAnalysis() (string, tea.Cmd) {
	if m.app.Dashboard.InFlight() {
		return formatAnalysisResult(analysisDoneMsg{err: app.ErrInsightInFlight}), nil
	}
	m.analyzing = true
	d := m.app.Dashboard
	run := func() tea.Msg {
		in, err := d.RequestInsight(context.Background())
		return analysisDoneMsg{insight: in, err: err}
	}
	return "", tea.Batch(m.spinner.Tick, run)
}

func formatAnalysisResult(msg analysisDoneMsg) string {
	switch {
	case errors.Is(msg.err, app.ErrInsightInFlight):
		return formatter.StyleYellow.Render("An analysis is already running.")
	case msg.err != nil:
		return strings.TrimRight(formatter.FormatAnalysisFailed(), "\n")
	}
	return strings.TrimRight(formatter.FormatInsight(msg.insight), "\n")
}

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		m.input.SetSuggestions(filterSuggestions(commandNames(m.app), parts[0]))
		return
	}

	if len(parts) <= 2 && (!trailingSpace || len(parts) == 1) {
		prefix := ""
		if len(parts) == 2 {
			prefix = parts[1]
		}
		if subs, ok := subcommandNames(m.app)[strings.ToLower(parts[0])]; ok {
			matches := filterSuggestions(subs, prefix)
			for i, s := range matches {
				matches[i] = parts[0] + " " + s
			}
			m.input.SetSuggestions(matches)
			return
		}
	}

	m.input.SetSuggestions(nil)
}

// shellBuiltins are handled by the shell itself rather than the command tree.
var shellBuiltins = []string{"help", "clear", "exit", "quit"}

// commandNames returns every top-level command the shell accepts.
func commandNames(a *App) []string {
	var names []string
	for _, c := range NewRootCmd(a).Commands() {
		if c.Name() == "shell" {
			continue
		}
		names = append(names, c.Name())
	}
	return append(names, shellBuiltins...)
}

// subcommandNames maps a command to its subcommand names.
func subcommandNames(a *App) map[string][]string {
	subs := make(map[string][]string)
	for _, c := range NewRootCmd(a).Commands() {
		for _, sc := range c.Commands() {
			subs[c.Name()] = append(subs[c.Name()], sc.Name())
		}
	}
	return subs
}

// filterSuggestions returns items from pool that start with prefix, ignoring
// case.
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return append([]string(nil), pool...)
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}
