// Package app wires the entry store, the aggregator and the insight service
// into the single state object the views talk to.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/alexanderramin/timepaisa/internal/aggregate"
	"github.com/alexanderramin/timepaisa/internal/domain"
	"github.com/alexanderramin/timepaisa/internal/insight"
	"github.com/alexanderramin/timepaisa/internal/store"
)

// ErrInsightInFlight is returned when an analysis is requested while another
// one is still running.
var ErrInsightInFlight = errors.New("an analysis is already in progress")

// InsightService produces an AIInsight from the current logs.
type InsightService interface {
	RequestInsight(ctx context.Context, timeEntries []domain.TimeEntry, moneyEntries []domain.MoneyEntry) (*domain.AIInsight, error)
}

// Dashboard is the application state shared by every view.
type Dashboard struct {
	store    *store.EntryStore
	insights InsightService
	observer UseCaseObserver
	gate     *semaphore.Weighted
	running  atomic.Bool

	mu     sync.RWMutex
	latest *domain.AIInsight
}

// DashboardOption configures a Dashboard.
type DashboardOption func(*Dashboard)

// WithObserver sets the use-case observer.
func WithObserver(o UseCaseObserver) DashboardOption {
	return func(d *Dashboard) {
		if o != nil {
			d.observer = o
		}
	}
}

// NewDashboard creates a Dashboard over s. insights may be nil, in which
// case every analysis request fails.
func NewDashboard(s *store.EntryStore, insights InsightService, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		store:    s,
		insights: insights,
		observer: NoopUseCaseObserver{},
		gate:     semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dashboard) TimeEntries() []domain.TimeEntry { return d.store.TimeEntries() }

func (d *Dashboard) MoneyEntries() []domain.MoneyEntry { return d.store.MoneyEntries() }

// Summary recomputes every aggregate view from the current logs.
func (d *Dashboard) Summary() aggregate.Summary {
	return aggregate.Summarize(d.store.TimeEntries(), d.store.MoneyEntries())
}

// LatestInsight returns a copy of the most recent successful analysis, or
// nil. Changing the copy leaves the stored result alone.
func (d *Dashboard) LatestInsight() *domain.AIInsight {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.latest.Clone()
}

// InFlight reports whether an analysis is running.
func (d *Dashboard) InFlight() bool {
	return d.running.Load()
}

func (d *Dashboard) AddTimeEntry(ctx context.Context, draft domain.TimeDraft) (domain.TimeEntry, bool) {
	start := time.Now()
	entry, ok := d.store.AddTimeEntry(draft)
	d.observe(ctx, "time_add", start, nil, map[string]any{
		"category": draft.Category.String(),
		"hours":    draft.Hours,
		"accepted": ok,
	})
	return entry, ok
}

func (d *Dashboard) AddMoneyEntry(ctx context.Context, draft domain.MoneyDraft) (domain.MoneyEntry, bool) {
	start := time.Now()
	entry, ok := d.store.AddMoneyEntry(draft)
	d.observe(ctx, "money_add", start, nil, map[string]any{
		"category": draft.Category.String(),
		"amount":   draft.Amount,
		"accepted": ok,
	})
	return entry, ok
}

func (d *Dashboard) RemoveTimeEntry(ctx context.Context, id string) bool {
	start := time.Now()
	removed := d.store.RemoveTimeEntry(id)
	d.observe(ctx, "time_remove", start, nil, map[string]any{"id": id, "removed": removed})
	return removed
}

func (d *Dashboard) RemoveMoneyEntry(ctx context.Context, id string) bool {
	start := time.Now()
	removed := d.store.RemoveMoneyEntry(id)
	d.observe(ctx, "money_remove", start, nil, map[string]any{"id": id, "removed": removed})
	return removed
}

// RequestInsight analyses a snapshot of the current logs. On success the
// result replaces the latest insight. On failure the previous insight is
// kept. Only one analysis may run at a time; an overlapping call returns
// ErrInsightInFlight immediately.
func (d *Dashboard) RequestInsight(ctx context.Context) (*domain.AIInsight, error) {
	if !d.gate.TryAcquire(1) {
		return nil, ErrInsightInFlight
	}
	d.running.Store(true)
	defer func() {
		d.running.Store(false)
		d.gate.Release(1)
	}()

	start := time.Now()
	timeEntries := d.store.TimeEntries()
	moneyEntries := d.store.MoneyEntries()

	var (
		result *domain.AIInsight
		err    error
	)
	if d.insights == nil {
		err = fmt.Errorf("%w: no insight service configured", insight.ErrAnalysisFailed)
	} else {
		result, err = d.insights.RequestInsight(ctx, timeEntries, moneyEntries)
	}
	d.observe(ctx, "analyze", start, err, map[string]any{
		"time_entries":  len(timeEntries),
		"money_entries": len(moneyEntries),
	})
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.latest = result.Clone()
	d.mu.Unlock()
	return result, nil
}

func (d *Dashboard) observe(ctx context.Context, name string, start time.Time, err error, fields map[string]any) {
	d.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: start,
		Duration:  time.Since(start),
		Err:       err,
		Fields:    fields,
	})
}
