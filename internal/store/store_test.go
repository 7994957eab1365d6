package store

import (
	"sync"
	"testing"

	"github.com/alexanderramin/timepaisa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *EntryStore {
	return New(WithIDGenerator(&CounterGenerator{}))
}

func TestAddTimeEntry_PrependsAndAssignsID(t *testing.T) {
	s := newTestStore()

	first, ok := s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeStudy, Hours: 4, Date: "2023-10-01"})
	require.True(t, ok)
	second, ok := s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeReels, Hours: 3.5, Date: "2023-10-01"})
	require.True(t, ok)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)

	entries := s.TimeEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, second, entries[0])
	assert.Equal(t, first, entries[1])
}

func TestAddEntry_RejectsNonPositiveMagnitude(t *testing.T) {
	s := newTestStore()

	for _, hours := range []float64{0, -1, -0.5} {
		_, ok := s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeStudy, Hours: hours, Date: "2023-10-01"})
		assert.False(t, ok)
	}
	for _, amount := range []float64{0, -250} {
		_, ok := s.AddMoneyEntry(domain.MoneyDraft{Category: domain.MoneyFood, Amount: amount, Date: "2023-10-01"})
		assert.False(t, ok)
	}

	assert.Empty(t, s.TimeEntries())
	assert.Empty(t, s.MoneyEntries())
	assert.Equal(t, uint64(0), s.Version())

	// No identifier was consumed by the rejected drafts.
	e, ok := s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeStudy, Hours: 1, Date: "2023-10-01"})
	require.True(t, ok)
	assert.Equal(t, "1", e.ID)
}

func TestAddThenRemove_RestoresCollection(t *testing.T) {
	s := newTestStore()
	s.Seed()

	beforeTime := s.TimeEntries()
	beforeMoney := s.MoneyEntries()

	te, ok := s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeFitness, Hours: 1, Date: "2023-10-03"})
	require.True(t, ok)
	me, ok := s.AddMoneyEntry(domain.MoneyDraft{Category: domain.MoneyBills, Amount: 90, Date: "2023-10-03"})
	require.True(t, ok)

	assert.True(t, s.RemoveTimeEntry(te.ID))
	assert.True(t, s.RemoveMoneyEntry(me.ID))

	assert.Equal(t, beforeTime, s.TimeEntries())
	assert.Equal(t, beforeMoney, s.MoneyEntries())
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	s := newTestStore()
	s.Seed()
	version := s.Version()

	assert.False(t, s.RemoveTimeEntry("does-not-exist"))
	assert.False(t, s.RemoveMoneyEntry("does-not-exist"))
	assert.Len(t, s.TimeEntries(), 5)
	assert.Len(t, s.MoneyEntries(), 4)
	assert.Equal(t, version, s.Version())
}

func TestRemove_OnlyTouchesOwnCollection(t *testing.T) {
	s := newTestStore()
	te, _ := s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeStudy, Hours: 1, Date: "2023-10-01"})

	assert.False(t, s.RemoveMoneyEntry(te.ID))
	assert.Len(t, s.TimeEntries(), 1)
}

func TestSnapshot_UnaffectedByLaterMutation(t *testing.T) {
	s := newTestStore()
	s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeStudy, Hours: 1, Date: "2023-10-01"})

	snap := s.TimeEntries()
	s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeSleep, Hours: 8, Date: "2023-10-01"})
	s.RemoveTimeEntry("1")

	require.Len(t, snap, 1)
	assert.Equal(t, "1", snap[0].ID)

	snap[0].Hours = 99
	assert.Equal(t, 8.0, s.TimeEntries()[0].Hours)
}

func TestVersion_IncrementsOnEveryMutation(t *testing.T) {
	s := newTestStore()
	s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeStudy, Hours: 1, Date: "2023-10-01"})
	s.AddMoneyEntry(domain.MoneyDraft{Category: domain.MoneyFood, Amount: 5, Date: "2023-10-01"})
	s.RemoveTimeEntry("1")
	assert.Equal(t, uint64(3), s.Version())
}

func TestSeed_NewestFirst(t *testing.T) {
	s := newTestStore()
	s.Seed()

	timeLogs := s.TimeEntries()
	require.Len(t, timeLogs, 5)
	assert.Equal(t, "React basics", timeLogs[0].Description)
	assert.Equal(t, "Assignment", timeLogs[4].Description)

	moneyLogs := s.MoneyEntries()
	require.Len(t, moneyLogs, 4)
	assert.Equal(t, "Grocery", moneyLogs[0].Description)
}

func TestUUIDGenerator_Unique(t *testing.T) {
	s := New()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		e, ok := s.AddMoneyEntry(domain.MoneyDraft{Category: domain.MoneyOthers, Amount: 1, Date: "2023-10-01"})
		require.True(t, ok)
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	s := newTestStore()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.AddTimeEntry(domain.TimeDraft{Category: domain.TimeStudy, Hours: 1, Date: "2023-10-01"})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = s.TimeEntries()
		}
	}()
	wg.Wait()
	assert.Len(t, s.TimeEntries(), 100)
}
