package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

func TestFormatTimeEntries(t *testing.T) {
	out := plain(FormatTimeEntries([]domain.TimeEntry{
		{ID: "aaaaaaaa-1111", Category: domain.TimeReels, Hours: 3.5, Date: "2023-10-01"},
		{ID: "bbbbbbbb-2222", Category: domain.TimeStudy, Hours: 4, Date: "2023-10-01", Description: "React basics"},
	}))

	assert.Contains(t, out, "TIME LOGS (2)")
	assert.Contains(t, out, "aaaaaaaa")
	assert.NotContains(t, out, "aaaaaaaa-1111")
	assert.Contains(t, out, "Reels")
	assert.Contains(t, out, "3.5h")
	assert.Contains(t, out, "React basics")
	assert.Contains(t, out, "--")
}

func TestFormatTimeEntries_Empty(t *testing.T) {
	assert.Contains(t, plain(FormatTimeEntries(nil)), "No time logged yet")
}

func TestFormatMoneyEntries(t *testing.T) {
	out := plain(FormatMoneyEntries([]domain.MoneyEntry{
		{ID: "m1", Category: domain.MoneySnacks, Amount: 250, Date: "2023-10-01", Description: "Vending machine"},
	}))
	assert.Contains(t, out, "MONEY LOGS (1)")
	assert.Contains(t, out, "₹250")
	assert.Contains(t, out, "Snacks")
	assert.Contains(t, out, "Vending machine")

	assert.Contains(t, plain(FormatMoneyEntries(nil)), "No spending logged yet")
}

func TestFormatAdded(t *testing.T) {
	out := plain(FormatTimeAdded(domain.TimeEntry{ID: "7", Category: domain.TimeSleep, Hours: 8, Date: "2023-10-01"}))
	assert.Contains(t, out, "Logged 8h of Sleep on 2023-10-01")
	assert.Contains(t, out, "(7)")

	out = plain(FormatMoneyAdded(domain.MoneyEntry{ID: "9", Category: domain.MoneyBills, Amount: 80, Date: "2023-10-02"}))
	assert.Contains(t, out, "Logged ₹80 on Bills on 2023-10-02")
}

func TestFormatRejected(t *testing.T) {
	assert.Contains(t, plain(FormatRejected("hours")), "hours must be greater than zero")
}
