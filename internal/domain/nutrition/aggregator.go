package nutrition

import (
	"strconv"
	"strings"
	"time"

	"gymtrack/internal/domain/entity"
)

// Line is a food selected into a meal.
type Line struct {
	Food     entity.Food `json:"food"`
	Quantity float64     `json:"quantity"`
	// Absolute lines carry macros that already match Quantity and are never rescaled.
	Absolute bool `json:"absolute"`
}

// Value returns the line's scaled contribution.
func (l Line) Value() Value {
	return Scale(l.Food, l.Quantity, l.Absolute)
}

// Totalize sums the scaled contribution of every line.
func Totalize(lines []Line) Value {
	var total Value
	for _, line := range lines {
		total = total.Add(line.Value())
	}

	return total
}

// HistoryDate is the month and day parsed from a history timestamp.
type HistoryDate struct {
	Month int
	Day   int
}

// ParseHistoryDate extracts month and day from a loosely formatted timestamp such as
// "2025-03-06T09:06:38.998700" or "2025-03-06 09:06". ok is false when the date
// portion does not split into at least three dash separated components or when
// month or day are not numbers.
func ParseHistoryDate(createdAt string) (HistoryDate, bool) {
	datePart, _, _ := strings.Cut(strings.TrimSpace(createdAt), "T")

	comps := strings.Split(datePart, "-")
	if len(comps) < 3 {
		return HistoryDate{}, false
	}

	month, err := strconv.Atoi(comps[1])
	if err != nil {
		return HistoryDate{}, false
	}

	day, err := strconv.Atoi(leadingDigits(comps[2], 2))
	if err != nil {
		return HistoryDate{}, false
	}

	return HistoryDate{Month: month, Day: day}, true
}

func leadingDigits(s string, limit int) string {
	end := 0
	for end < len(s) && end < limit && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	return s[:end]
}

// MatchesDay reports whether the parsed date falls on the reference's month and day.
// The year is not compared.
func (d HistoryDate) MatchesDay(reference time.Time) bool {
	return d.Month == int(reference.Month()) && d.Day == reference.Day()
}

// FilterToday keeps the entries whose timestamp matches the reference month and day.
// Entries with unparseable timestamps are skipped.
func FilterToday(history []entity.MealHistoryEntry, reference time.Time) []entity.MealHistoryEntry {
	today := make([]entity.MealHistoryEntry, 0, len(history))
	for _, entry := range history {
		date, ok := ParseHistoryDate(entry.CreatedAt)
		if !ok || !date.MatchesDay(reference) {
			continue
		}
		today = append(today, entry)
	}

	return today
}

// DailyTotals sums the stored totals of today's entries.
func DailyTotals(history []entity.MealHistoryEntry, reference time.Time) Value {
	var total Value
	for _, entry := range FilterToday(history, reference) {
		total = total.Add(FromHistory(entry))
	}

	return total
}

// Remaining is target minus consumed. Overshoot shows up as negative components.
func Remaining(target, consumed Value) Value {
	return target.Sub(consumed)
}
