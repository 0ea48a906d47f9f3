package activity

import (
	"sort"
	"time"
)

// StripDays is the length of the recent-days strip, ending today.
const StripDays = 31

// DaySummary is one day of the strip or the month calendar.
type DaySummary struct {
	Date  string
	Time  time.Time
	Count int
}

// Active reports whether anything was logged that day.
func (d DaySummary) Active() bool {
	return d.Count > 0
}

// MonthView is a month laid out for a calendar grid whose weeks start on Sunday.
type MonthView struct {
	Year  int
	Month time.Month
	// Leading is the number of blank cells before the first of the month.
	Leading int
	Days    []DaySummary
}

// Label returns e.g. "March 2026".
func (m MonthView) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}

// ByDate groups entries by their day key.
func (l *Log) ByDate() map[string][]Entry {
	groups := make(map[string][]Entry)
	for _, e := range l.entries {
		groups[e.Date] = append(groups[e.Date], e)
	}
	return groups
}

// Day returns the entries of one day ordered by creation time.
func (l *Log) Day(date string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sortEntries(out, false)
	return out
}

// ActiveDays returns the set of days with at least one entry.
func (l *Log) ActiveDays() map[string]bool {
	days := make(map[string]bool)
	for _, e := range l.entries {
		days[e.Date] = true
	}
	return days
}

// Strip returns the StripDays days ending on today, oldest first.
func (l *Log) Strip(today time.Time) []DaySummary {
	counts := l.counts()
	end := midnight(today)
	out := make([]DaySummary, 0, StripDays)
	for i := StripDays - 1; i >= 0; i-- {
		d := end.AddDate(0, 0, -i)
		key := DateKey(d)
		out = append(out, DaySummary{Date: key, Time: d, Count: counts[key]})
	}
	return out
}

// Month returns the calendar of the month offset months away from today's.
func (l *Log) Month(today time.Time, offset int) MonthView {
	first := time.Date(today.Year(), today.Month()+time.Month(offset), 1, 0, 0, 0, 0, today.Location())
	counts := l.counts()

	view := MonthView{
		Year:    first.Year(),
		Month:   first.Month(),
		Leading: int(first.Weekday()),
	}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		key := DateKey(d)
		view.Days = append(view.Days, DaySummary{Date: key, Time: d, Count: counts[key]})
	}
	return view
}

func (l *Log) counts() map[string]int {
	counts := make(map[string]int)
	for _, e := range l.entries {
		counts[e.Date]++
	}
	return counts
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sortEntries orders by day, optionally newest day first, then by creation time.
func sortEntries(entries []Entry, newestFirst bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			if newestFirst {
				return a.Date > b.Date
			}
			return a.Date < b.Date
		}
		return a.CreatedAt < b.CreatedAt
	})
}
