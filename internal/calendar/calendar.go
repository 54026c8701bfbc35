// Package calendar lays out a month grid annotated with expense counts.
package calendar

import (
	"time"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
)

const dateLayout = "2006-01-02"

// Day is one populated cell of the grid.
type Day struct {
	Number   int
	Date     string
	Count    int
	Total    float64
	Today    bool
	Selected bool
}

// HasRecords reports whether the cell can be selected.
func (d Day) HasRecords() bool { return d.Count > 0 }

// Grid is a month laid out Sunday-first.
type Grid struct {
	Month    finance.Month
	Leading  int
	Days     []Day
	Selected string

	byDate map[string][]finance.Expense
}

// Build lays out the month. Records are matched to days by exact string
// equality of their Date with the cell's YYYY-MM-DD. selected marks a cell
// only when that day has records. today may be empty.
func Build(month finance.Month, records []finance.Expense, selected, today string) Grid {
	first := month.First()
	g := Grid{
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]Day, month.Days()),
		byDate:  make(map[string][]finance.Expense),
	}

	for _, r := range records {
		g.byDate[r.Date] = append(g.byDate[r.Date], r)
	}

	for i := range g.Days {
		date := first.AddDate(0, 0, i).Format(dateLayout)
		day := Day{Number: i + 1, Date: date, Today: date == today}
		for _, r := range g.byDate[date] {
			day.Count++
			day.Total += r.Amount
		}
		if date == selected && day.Count > 0 {
			day.Selected = true
			g.Selected = date
		}
		g.Days[i] = day
	}
	return g
}

// Details returns the records for date in their original order.
func (g Grid) Details(date string) []finance.Expense {
	return g.byDate[date]
}

// Cells returns the total number of cells including leading blanks.
func (g Grid) Cells() int { return g.Leading + len(g.Days) }

// Today formats t as a grid date.
func Today(t time.Time) string { return t.Format(dateLayout) }
