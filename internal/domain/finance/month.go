package finance

import "time"

const monthLayout = "2006-01"

// Month is a calendar month in YYYY-MM form, as the backend expects.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses YYYY-MM. ok is false for anything else.
func ParseMonth(raw string) (Month, bool) {
	t, err := time.Parse(monthLayout, raw)
	if err != nil {
		return Month{}, false
	}
	return Month{Year: t.Year(), Month: t.Month()}, true
}

// MonthOf returns the month containing t in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ResolveMonth returns the parsed month or, when raw is absent or malformed,
// the month containing now.
func ResolveMonth(raw string, now time.Time) Month {
	if m, ok := ParseMonth(raw); ok {
		return m
	}
	return MonthOf(now)
}

// String renders YYYY-MM.
func (m Month) String() string { return m.First().Format(monthLayout) }

// Label renders e.g. "March 2025".
func (m Month) Label() string { return m.First().Format("January 2006") }

// First is midnight UTC on the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days is the number of days in the month.
func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

// Prev returns the previous month.
func (m Month) Prev() Month { return MonthOf(m.First().AddDate(0, -1, 0)) }

// Next returns the following month.
func (m Month) Next() Month { return MonthOf(m.First().AddDate(0, 1, 0)) }
