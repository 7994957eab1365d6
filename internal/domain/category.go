package domain

import (
	"fmt"
	"strings"
)

// TimeCategory classifies how an hour was spent.
type TimeCategory string

const (
	TimeStudy   TimeCategory = "Study"
	TimeReels   TimeCategory = "Reels"
	TimeFood    TimeCategory = "Food"
	TimeSleep   TimeCategory = "Sleep"
	TimeFitness TimeCategory = "Fitness"
	TimeOthers  TimeCategory = "Others"
)

// MoneyCategory classifies what money was spent on. It shares some labels
// with TimeCategory but the two sets are unrelated.
type MoneyCategory string

const (
	MoneyFood          MoneyCategory = "Food"
	MoneyTransport     MoneyCategory = "Transport"
	MoneySnacks        MoneyCategory = "Snacks"
	MoneyEntertainment MoneyCategory = "Entertainment"
	MoneyBills         MoneyCategory = "Bills"
	MoneyOthers        MoneyCategory = "Others"
)

var timeCategories = []TimeCategory{TimeStudy, TimeReels, TimeFood, TimeSleep, TimeFitness, TimeOthers}

var moneyCategories = []MoneyCategory{MoneyFood, MoneyTransport, MoneySnacks, MoneyEntertainment, MoneyBills, MoneyOthers}

// AllTimeCategories returns every time category in declaration order.
func AllTimeCategories() []TimeCategory {
	out := make([]TimeCategory, len(timeCategories))
	copy(out, timeCategories)
	return out
}

// AllMoneyCategories returns every money category in declaration order.
func AllMoneyCategories() []MoneyCategory {
	out := make([]MoneyCategory, len(moneyCategories))
	copy(out, moneyCategories)
	return out
}

func (c TimeCategory) Valid() bool {
	for _, known := range timeCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c MoneyCategory) Valid() bool {
	for _, known := range moneyCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c TimeCategory) String() string  { return string(c) }
func (c MoneyCategory) String() string { return string(c) }

// ParseTimeCategory matches s case-insensitively against the known labels.
func ParseTimeCategory(s string) (TimeCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range timeCategories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: time category %q", ErrUnknownCategory, s)
}

// ParseMoneyCategory matches s case-insensitively against the known labels.
func ParseMoneyCategory(s string) (MoneyCategory, error) {
	s = strings.TrimSpace(s)
	for _, c := range moneyCategories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: money category %q", ErrUnknownCategory, s)
}
