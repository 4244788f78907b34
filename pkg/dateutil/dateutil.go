// Package dateutil holds the calendar-day conventions shared by the whole service.
//
// A day is always represented as midnight UTC of its calendar date. The calendar date
// itself is taken from the wall clock of the configured application location, so an
// instant late in the evening in Los Angeles still belongs to that evening's day.
package dateutil

import (
	"math"
	"time"

	"github.com/jinzhu/now"
)

const Layout = "2006-01-02"

// Day strips the time of day from t as observed in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse reads a YYYY-MM-DD string into a day value.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(day time.Time) string {
	return day.Format(Layout)
}

// DaysBetween returns the whole-day difference to - from. Negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	from = Day(from, time.UTC)
	to = Day(to, time.UTC)
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// Window returns the inclusive trailing range of n days ending at today.
func Window(today time.Time, n int) (from, to time.Time) {
	if n < 1 {
		n = 1
	}
	to = Day(today, time.UTC)
	return to.AddDate(0, 0, -(n - 1)), to
}

// MonthBounds returns the first and the last day of the month.
func MonthBounds(month time.Month, year int) (first, last time.Time) {
	n := now.With(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	return n.BeginningOfMonth(), Day(n.EndOfMonth(), time.UTC)
}
