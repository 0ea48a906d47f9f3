// Package activity keeps the log of completed sessions and manual entries.
package activity

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-day key of an entry.
const DateLayout = "2006-01-02"

// DefaultName is shown for entries that carry neither a custom nor a routine name.
const DefaultName = "Routine"

// Entry is one logged session.
type Entry struct {
	ID          string  `json:"id"`
	RoutineID   *string `json:"routineId"`
	RoutineName *string `json:"routineName"`
	CustomName  *string `json:"customName"`
	// Duration is in minutes.
	Duration    *int    `json:"duration"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	Manual      bool    `json:"manual"`
	CreatedAt   string  `json:"createdAt"`
}

// DisplayName returns the custom name, else the routine name, else DefaultName.
func DisplayName(e Entry) string {
	if e.CustomName != nil && *e.CustomName != "" {
		return *e.CustomName
	}
	if e.RoutineName != nil && *e.RoutineName != "" {
		return *e.RoutineName
	}
	return DefaultName
}

// FormatDurationLabel renders minutes as "N min" below an hour and "Hh Mm"
// above. Missing or non-positive values render as "".
func FormatDurationLabel(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return ""
	}
	total := *minutes
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// DateKey formats t as a calendar-day key in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar-day key in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
