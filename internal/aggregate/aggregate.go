// Package aggregate derives the dashboard views from the entry logs. Every
// function is pure and recomputes from its inputs on each call.
package aggregate

import (
	"slices"
	"sort"

	"github.com/alexanderramin/timepaisa/internal/domain"
)

// DayPoint is one bucket of the daily series.
type DayPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Spent float64 `json:"spent"`
}

// CategoryTotal is one row of a sorted totals view.
type CategoryTotal struct {
	Category string
	Total    float64
}

// Summary bundles every aggregate the dashboard shows.
type Summary struct {
	TimeTotals  map[string]float64
	MoneyTotals map[string]float64
	Daily       []DayPoint
	TotalHours  float64
	TotalSpent  float64
}

// CategoryTotals groups entries by category label and sums their magnitude.
// Categories with no entries are absent from the result.
func CategoryTotals[E any](entries []E, category func(E) string, magnitude func(E) float64) map[string]float64 {
	groups := make(map[string][]float64)
	for _, e := range entries {
		c := category(e)
		groups[c] = append(groups[c], magnitude(e))
	}
	totals := make(map[string]float64, len(groups))
	for c, values := range groups {
		totals[c] = sum(values)
	}
	return totals
}

// TimeTotals sums hours per time category.
func TimeTotals(entries []domain.TimeEntry) map[string]float64 {
	return CategoryTotals(entries, timeCategory, hours)
}

// MoneyTotals sums amounts per money category.
func MoneyTotals(entries []domain.MoneyEntry) map[string]float64 {
	return CategoryTotals(entries, moneyCategory, amount)
}

func TotalHours(entries []domain.TimeEntry) float64 {
	return sum(collect(entries, hours))
}

func TotalSpent(entries []domain.MoneyEntry) float64 {
	return sum(collect(entries, amount))
}

// DailySeries buckets both logs by date. Dates are ISO 8601, so sorting them
// as strings puts them in chronological order. A date that only appears in
// one log has 0 for the other field.
func DailySeries(timeLogs []domain.TimeEntry, moneyLogs []domain.MoneyEntry) []DayPoint {
	hoursByDate := make(map[string][]float64)
	spentByDate := make(map[string][]float64)
	for _, e := range timeLogs {
		hoursByDate[e.Date] = append(hoursByDate[e.Date], e.Hours)
	}
	for _, e := range moneyLogs {
		spentByDate[e.Date] = append(spentByDate[e.Date], e.Amount)
	}

	dates := make([]string, 0, len(hoursByDate)+len(spentByDate))
	for d := range hoursByDate {
		dates = append(dates, d)
	}
	for d := range spentByDate {
		if _, dup := hoursByDate[d]; !dup {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)

	series := make([]DayPoint, 0, len(dates))
	for _, d := range dates {
		series = append(series, DayPoint{
			Date:  d,
			Hours: sum(hoursByDate[d]),
			Spent: sum(spentByDate[d]),
		})
	}
	return series
}

// Summarize computes every dashboard aggregate in one pass over the inputs.
func Summarize(timeLogs []domain.TimeEntry, moneyLogs []domain.MoneyEntry) Summary {
	return Summary{
		TimeTotals:  TimeTotals(timeLogs),
		MoneyTotals: MoneyTotals(moneyLogs),
		Daily:       DailySeries(timeLogs, moneyLogs),
		TotalHours:  TotalHours(timeLogs),
		TotalSpent:  TotalSpent(moneyLogs),
	}
}

// SortedTotals orders a totals map by descending total, then by label.
func SortedTotals(totals map[string]float64) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(totals))
	for c, v := range totals {
		out = append(out, CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// sum adds values in ascending order so the result does not depend on the
// order the entries were logged in.
func sum(values []float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	var total float64
	for _, v := range sorted {
		total += v
	}
	return total
}

func collect[E any](entries []E, f func(E) float64) []float64 {
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		out = append(out, f(e))
	}
	return out
}

func timeCategory(e domain.TimeEntry) string   { return string(e.Category) }
func moneyCategory(e domain.MoneyEntry) string { return string(e.Category) }
func hours(e domain.TimeEntry) float64         { return e.Hours }
func amount(e domain.MoneyEntry) float64       { return e.Amount }
