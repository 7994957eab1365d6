package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar date format used for entry dates.
// Lexicographic order of dates in this layout is chronological order.
const DateLayout = "2006-01-02"

type TimeEntry struct {
	ID          string
	Category    TimeCategory
	Hours       float64
	Date        string
	Description string
}

type MoneyEntry struct {
	ID          string
	Category    MoneyCategory
	Amount      float64
	Date        string
	Description string
}

// TimeDraft is a time entry that has not been assigned an identifier yet.
type TimeDraft struct {
	Category    TimeCategory
	Hours       float64
	Date        string
	Description string
}

// MoneyDraft is a money entry that has not been assigned an identifier yet.
type MoneyDraft struct {
	Category    MoneyCategory
	Amount      float64
	Date        string
	Description string
}

// Acceptable reports whether the draft may be stored. Only the magnitude is
// checked.
func (d TimeDraft) Acceptable() bool { return d.Hours > 0 }

func (d MoneyDraft) Acceptable() bool { return d.Amount > 0 }

func (d TimeDraft) WithID(id string) TimeEntry {
	return TimeEntry{
		ID:          id,
		Category:    d.Category,
		Hours:       d.Hours,
		Date:        d.Date,
		Description: d.Description,
	}
}

func (d MoneyDraft) WithID(id string) MoneyEntry {
	return MoneyEntry{
		ID:          id,
		Category:    d.Category,
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
	}
}

// Today returns now's calendar date in DateLayout.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ParseDate checks that s is a calendar date in DateLayout and returns it
// in canonical form.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t.Format(DateLayout), nil
}
