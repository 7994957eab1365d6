package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timepaisa/internal/app"
	"github.com/alexanderramin/timepaisa/internal/config"
	"github.com/alexanderramin/timepaisa/internal/domain"
	"github.com/alexanderramin/timepaisa/internal/logging"
	"github.com/alexanderramin/timepaisa/internal/testutil"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plain(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

// fixedNow is the clock used by every test App.
var fixedNow = time.Date(2023, 10, 3, 9, 0, 0, 0, time.UTC)

type stubInsights struct {
	result *domain.AIInsight
	err    error
	calls  int
}

func (s *stubInsights) RequestInsight(context.Context, []domain.TimeEntry, []domain.MoneyEntry) (*domain.AIInsight, error) {
	s.calls++
	return s.result, s.err
}

func testApp(t *testing.T, insights app.InsightService) *App {
	t.Helper()
	return &App{
		Dashboard: app.NewDashboard(testutil.NewStore(), insights),
		Config:    config.Default(),
		Logger:    logging.Discard(),
		Now:       func() time.Time { return fixedNow },
	}
}

// runCmd executes args against a fresh root command and returns stdout with
// styling removed.
func runCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return plain(out.String()), err
}

func mustRun(t *testing.T, a *App, args ...string) string {
	t.Helper()
	out, err := runCmd(t, a, args...)
	require.NoError(t, err)
	return out
}

func sampleInsight() *domain.AIInsight {
	return testutil.NewInsight()
}
