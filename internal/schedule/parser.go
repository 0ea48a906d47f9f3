// Package schedule delays the start of a routine until a requested time.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// ParseStart resolves a start time relative to now. Supported forms:
//   - +DURATION → now plus a Go duration, e.g. "+10m" or "+1h30m"
//   - HH:MM → today if still ahead, tomorrow otherwise
//   - "YYYY-MM-DD HH:MM" and YYYY-MM-DDTHH:MM → exact local datetime
func ParseStart(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	local := now.Location()

	if rest, ok := strings.CutPrefix(input, "+"); ok {
		d, err := time.ParseDuration(rest)
		if err != nil || d < 0 {
			return time.Time{}, fmt.Errorf("invalid start offset %q: want a positive duration like +10m", input)
		}
		return now.Add(d), nil
	}

	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, input, local); err == nil {
			return t, nil
		}
	}

	if t, err := time.ParseInLocation("15:04", input, local); err == nil {
		start := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, local)
		if !start.After(now) {
			start = start.AddDate(0, 0, 1)
		}
		return start, nil
	}

	return time.Time{}, fmt.Errorf("invalid start time %q (supported: +DURATION, HH:MM, \"YYYY-MM-DD HH:MM\", YYYY-MM-DDTHH:MM)", input)
}
