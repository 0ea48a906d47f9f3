package schedule

import (
	"context"
	"time"
)

// WaitUntil blocks until target, calling report with the time left at
// adaptive intervals: every minute above an hour, every 30s above ten
// minutes, every 10s above a minute, then every second. It returns at once
// for a target in the past and returns ctx.Err() when ctx is done first.
func WaitUntil(ctx context.Context, target time.Time, report func(remaining time.Duration)) error {
	remaining := time.Until(target)
	if remaining <= 0 {
		return nil
	}
	if report != nil {
		report(remaining.Round(time.Second))
	}

	for {
		interval := adaptiveInterval(remaining)
		if interval > remaining {
			interval = remaining
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		remaining = time.Until(target)
		if remaining <= 0 {
			return nil
		}
		if report != nil {
			report(remaining.Round(time.Second))
		}
	}
}

func adaptiveInterval(remaining time.Duration) time.Duration {
	switch {
	case remaining > time.Hour:
		return time.Minute
	case remaining > 10*time.Minute:
		return 30 * time.Second
	case remaining > time.Minute:
		return 10 * time.Second
	default:
		return time.Second
	}
}
