package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 14, 30, 15, 0, time.Local)

func TestParseStart(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"relative minutes", "+10m", now.Add(10 * time.Minute)},
		{"relative compound", " +1h30m ", now.Add(90 * time.Minute)},
		{"later today", "18:05", time.Date(2026, 10, 19, 18, 5, 0, 0, time.Local)},
		{"already passed rolls to tomorrow", "09:00", time.Date(2026, 10, 20, 9, 0, 0, 0, time.Local)},
		{"current minute rolls to tomorrow", "14:30", time.Date(2026, 10, 20, 14, 30, 0, 0, time.Local)},
		{"date and time", "2026-10-21 07:15", time.Date(2026, 10, 21, 7, 15, 0, 0, time.Local)},
		{"ISO 8601", "2026-10-21T07:15", time.Date(2026, 10, 21, 7, 15, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStart(tt.input, now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseStart_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "+", "+-5m", "+ten", "25:00", "2026-10-21"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseStart(input, now)
			assert.Error(t, err)
		})
	}
}
