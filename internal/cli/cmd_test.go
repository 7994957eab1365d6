package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timepaisa/internal/domain"
	"github.com/alexanderramin/timepaisa/internal/insight"
)

func TestTimeAdd_StoresEntry(t *testing.T) {
	a := testApp(t, nil)

	out := mustRun(t, a, "time", "add", "--category", "study", "--hours", "2.5", "--note", "Go generics")
	assert.Contains(t, out, "Logged 2.5h of Study on 2023-10-03")

	entries := a.Dashboard.TimeEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TimeEntry{
		ID:          "1",
		Category:    domain.TimeStudy,
		Hours:       2.5,
		Date:        "2023-10-03",
		Description: "Go generics",
	}, entries[0])
}

func TestTimeAdd_ExplicitDate(t *testing.T) {
	a := testApp(t, nil)

	mustRun(t, a, "time", "add", "--category", "Reels", "--hours", "1", "--date", "2023-10-01")
	assert.Equal(t, "2023-10-01", a.Dashboard.TimeEntries()[0].Date)
}

func TestTimeAdd_NonPositiveIsRejected(t *testing.T) {
	a := testApp(t, nil)

	for _, hours := range []string{"0", "-1"} {
		out := mustRun(t, a, "time", "add", "--category", "Study", "--hours", hours)
		assert.Contains(t, out, "Nothing logged: hours must be greater than zero.")
	}
	assert.Empty(t, a.Dashboard.TimeEntries())

	// Rejected drafts do not consume identifiers.
	mustRun(t, a, "time", "add", "--category", "Study", "--hours", "1")
	assert.Equal(t, "1", a.Dashboard.TimeEntries()[0].ID)
}

func TestTimeAdd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown category", []string{"--category", "Gaming", "--hours", "1"}, "unknown category"},
		{"money category", []string{"--category", "Snacks", "--hours", "1"}, "unknown category"},
		{"bad date", []string{"--category", "Study", "--hours", "1", "--date", "03/10/2023"}, "date"},
		{"missing hours", []string{"--category", "Study"}, `required flag(s) "hours" not set`},
		{"missing category", []string{"--hours", "1"}, `required flag(s) "category" not set`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testApp(t, nil)
			_, err := runCmd(t, a, append([]string{"time", "add"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, a.Dashboard.TimeEntries())
		})
	}
}

func TestTimeList(t *testing.T) {
	a := testApp(t, nil)
	assert.Contains(t, mustRun(t, a, "time", "list"), "No time logged yet.")

	mustRun(t, a, "time", "add", "--category", "Study", "--hours", "4")
	mustRun(t, a, "time", "add", "--category", "Reels", "--hours", "3.5")

	out := mustRun(t, a, "time", "ls")
	assert.Contains(t, out, "Time Logs (2)")
	assert.Less(t, strings.Index(out, "Reels"), strings.Index(out, "Study"), "most recent first")
}

func TestTimeRemove(t *testing.T) {
	a := testApp(t, nil)
	mustRun(t, a, "time", "add", "--category", "Study", "--hours", "4")
	mustRun(t, a, "time", "add", "--category", "Reels", "--hours", "3.5")
	mustRun(t, a, "time", "add", "--category", "Sleep", "--hours", "8")

	// Row #2 is Reels (ID 2); then ID 3 by exact match.
	assert.Contains(t, mustRun(t, a, "time", "rm", "#2"), "Removed 2")
	assert.Contains(t, mustRun(t, a, "time", "rm", "3"), "Removed 3")

	entries := a.Dashboard.TimeEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TimeStudy, entries[0].Category)

	assert.Contains(t, mustRun(t, a, "time", "rm", "does-not-exist"), "No entry with ID does-not-exist.")
	assert.Len(t, a.Dashboard.TimeEntries(), 1)

	_, err := runCmd(t, a, "time", "rm", "#7")
	require.Error(t, err)
}

func TestMoneyCommands(t *testing.T) {
	a := testApp(t, nil)

	out := mustRun(t, a, "money", "add", "--category", "Snacks", "--amount", "250", "--date", "2023-10-01")
	assert.Contains(t, out, "Logged ₹250 on Snacks on 2023-10-01")

	out = mustRun(t, a, "money", "add", "--category", "Bills", "--amount", "0")
	assert.Contains(t, out, "amount must be greater than zero")

	out = mustRun(t, a, "money", "list")
	assert.Contains(t, out, "Money Logs (1)")
	assert.Contains(t, out, "Snacks")

	assert.Contains(t, mustRun(t, a, "money", "rm", "1"), "Removed 1")
	assert.Empty(t, a.Dashboard.MoneyEntries())

	_, err := runCmd(t, a, "money", "add", "--category", "Reels", "--amount", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestDashboard(t *testing.T) {
	a := testApp(t, nil)
	mustRun(t, a, "time", "add", "--category", "Study", "--hours", "4", "--date", "2023-10-01")
	mustRun(t, a, "time", "add", "--category", "Reels", "--hours", "3.5", "--date", "2023-10-01")
	mustRun(t, a, "money", "add", "--category", "Food", "--amount", "500", "--date", "2023-10-01")
	mustRun(t, a, "money", "add", "--category", "Snacks", "--amount", "250", "--date", "2023-10-01")

	out := mustRun(t, a, "dashboard")
	assert.Contains(t, out, "₹750")
	assert.Contains(t, out, "7.5h")
	assert.Contains(t, out, "2023-10-01")
}

func TestAnalyze_Success(t *testing.T) {
	insights := &stubInsights{result: sampleInsight()}
	a := testApp(t, insights)

	out := mustRun(t, a, "analyze")
	assert.Contains(t, out, "Three hours of Reels")
	assert.Contains(t, out, "Batch your snacks")
	assert.Equal(t, 1, insights.calls)

	out = mustRun(t, a, "insight")
	assert.Contains(t, out, "Three hours of Reels")
	assert.Contains(t, mustRun(t, a, "dashboard"), "Productivity 62%")
}

func TestAnalyze_FailureShowsNotice(t *testing.T) {
	insights := &stubInsights{err: errors.New("boom: api key leaked in message")}
	a := testApp(t, insights)

	out, err := runCmd(t, a, "analyze")
	require.Error(t, err)
	assert.ErrorIs(t, err, insight.ErrAnalysisFailed)
	assert.Contains(t, out, "AI Analysis failed. Check your API key or try again later.")
	assert.NotContains(t, out, "boom")
	assert.Nil(t, a.Dashboard.LatestInsight())
}

func TestInsight_NoneYet(t *testing.T) {
	a := testApp(t, nil)
	out := mustRun(t, a, "insight")
	assert.Contains(t, out, "No analysis yet.")
}

func TestConfigShow_MasksKey(t *testing.T) {
	a := testApp(t, nil)
	a.Config.LLM.APIKey = "AIzaSyExampleKey1234"

	out := mustRun(t, a, "config", "show")
	assert.Contains(t, out, "AIza****1234")
	assert.NotContains(t, out, "AIzaSyExampleKey1234")
	assert.Contains(t, out, "gemini")
}

func TestConfigInit(t *testing.T) {
	a := testApp(t, nil)
	path := filepath.Join(t.TempDir(), "timepaisa", "config.toml")

	out := mustRun(t, a, "config", "init", "--path", path, "--api-key", "secret-key-value")
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "secret-key-value")

	_, err = runCmd(t, a, "config", "init", "--path", path)
	require.Error(t, err)

	mustRun(t, a, "config", "init", "--path", path, "--force")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret-key-value")
}

func TestRoot_NonInteractiveShowsHelp(t *testing.T) {
	a := testApp(t, nil)
	out := mustRun(t, a)
	assert.Contains(t, out, "timepaisa")
	assert.Contains(t, out, "analyze")
}
