// Package store holds the in-memory time and money logs.
package store

import (
	"slices"
	"sync"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

// EntryStore owns both entry collections. Each collection is kept
// most-recent-first. Mutations replace the backing slice wholesale and
// readers get their own copy, so a snapshot never changes under its holder.
type EntryStore struct {
	mu      sync.RWMutex
	ids     IDGenerator
	time    []domain.TimeEntry
	money   []domain.MoneyEntry
	version uint64
}

// Option configures an EntryStore.
type Option func(*EntryStore)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *EntryStore) {
		if g != nil {
			s.ids = g
		}
	}
}

// New creates an empty EntryStore.
func New(opts ...Option) *EntryStore {
	s := &EntryStore{ids: UUIDGenerator{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTimeEntry stores d at the front of the time log. Drafts with
// non-positive hours are dropped without touching the store or consuming an
// identifier; ok reports whether the draft was stored.
func (s *EntryStore) AddTimeEntry(d domain.TimeDraft) (entry domain.TimeEntry, ok bool) {
	if !d.Acceptable() {
		return domain.TimeEntry{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry = d.WithID(s.ids.NewID())
	s.time = prepend(s.time, entry)
	s.version++
	return entry, true
}

// AddMoneyEntry stores d at the front of the money log. Drafts with
// non-positive amounts are dropped.
func (s *EntryStore) AddMoneyEntry(d domain.MoneyDraft) (entry domain.MoneyEntry, ok bool) {
	if !d.Acceptable() {
		return domain.MoneyEntry{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry = d.WithID(s.ids.NewID())
	s.money = prepend(s.money, entry)
	s.version++
	return entry, true
}

// RemoveTimeEntry deletes every time entry with the given id. A miss is not
// an error; removed reports whether anything matched.
func (s *EntryStore) RemoveTimeEntry(id string) (removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := without(s.time, func(e domain.TimeEntry) bool { return e.ID == id })
	if removed {
		s.time = next
		s.version++
	}
	return removed
}

// RemoveMoneyEntry deletes every money entry with the given id.
func (s *EntryStore) RemoveMoneyEntry(id string) (removed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed := without(s.money, func(e domain.MoneyEntry) bool { return e.ID == id })
	if removed {
		s.money = next
		s.version++
	}
	return removed
}

// TimeEntries returns the time log, most recent first.
func (s *EntryStore) TimeEntries() []domain.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.time)
}

// MoneyEntries returns the money log, most recent first.
func (s *EntryStore) MoneyEntries() []domain.MoneyEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.money)
}

// Version increases by one on every successful mutation.
func (s *EntryStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Seed adds the demo logs.
func (s *EntryStore) Seed() {
	for _, d := range domain.SampleTimeDrafts() {
		s.AddTimeEntry(d)
	}
	for _, d := range domain.SampleMoneyDrafts() {
		s.AddMoneyEntry(d)
	}
}

func prepend[E any](list []E, e E) []E {
	out := make([]E, 0, len(list)+1)
	out = append(out, e)
	return append(out, list...)
}

func without[E any](list []E, match func(E) bool) ([]E, bool) {
	out := make([]E, 0, len(list))
	for _, e := range list {
		if !match(e) {
			out = append(out, e)
		}
	}
	return out, len(out) != len(list)
}
