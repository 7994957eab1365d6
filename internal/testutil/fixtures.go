// Package testutil holds fixtures shared by tests in several packages.
package testutil

import (
	"github.com/alexanderramin/timepaisa/internal/domain"
	"github.com/alexanderramin/timepaisa/internal/store"
)

// FixtureDate is the default date of fixture drafts.
const FixtureDate = "2023-10-01"

// NewStore returns an empty store that issues IDs "1", "2", ...
func NewStore() *store.EntryStore {
	return store.New(store.WithIDGenerator(&store.CounterGenerator{}))
}

// Time draft options
type TimeDraftOption func(*domain.TimeDraft)

func WithHours(h float64) TimeDraftOption {
	return func(d *domain.TimeDraft) { d.Hours = h }
}

func WithTimeDate(date string) TimeDraftOption {
	return func(d *domain.TimeDraft) { d.Date = date }
}

func WithTimeNote(note string) TimeDraftOption {
	return func(d *domain.TimeDraft) { d.Description = note }
}

// NewTimeDraft returns a one hour draft for c on FixtureDate.
func NewTimeDraft(c domain.TimeCategory, opts ...TimeDraftOption) domain.TimeDraft {
	d := domain.TimeDraft{Category: c, Hours: 1, Date: FixtureDate}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Money draft options
type MoneyDraftOption func(*domain.MoneyDraft)

func WithAmount(a float64) MoneyDraftOption {
	return func(d *domain.MoneyDraft) { d.Amount = a }
}

func WithMoneyDate(date string) MoneyDraftOption {
	return func(d *domain.MoneyDraft) { d.Date = date }
}

func WithMoneyNote(note string) MoneyDraftOption {
	return func(d *domain.MoneyDraft) { d.Description = note }
}

// NewMoneyDraft returns a draft of 100 for c on FixtureDate.
func NewMoneyDraft(c domain.MoneyCategory, opts ...MoneyDraftOption) domain.MoneyDraft {
	d := domain.MoneyDraft{Category: c, Amount: 100, Date: FixtureDate}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Insight options
type InsightOption func(*domain.AIInsight)

func WithScores(productivity, financial int) InsightOption {
	return func(in *domain.AIInsight) {
		in.ProductivityScore = productivity
		in.FinancialScore = financial
	}
}

func WithRoast(roast string) InsightOption {
	return func(in *domain.AIInsight) { in.Roast = roast }
}

// NewInsight returns a complete, valid analysis.
func NewInsight(opts ...InsightOption) *domain.AIInsight {
	in := &domain.AIInsight{
		Roast:             "Three hours of Reels is a part-time job with no salary.",
		Summary:           "Solid study base, leaky snack budget.",
		ProductivityScore: 62,
		FinancialScore:    48,
		NextWeekPlan: []domain.DayPlan{
			{Day: "Monday", Focus: "Deep work on Go", Limit: "Reels under 30m"},
		},
		Tips: []string{"Batch your snacks", "Phone in another room while studying"},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}
