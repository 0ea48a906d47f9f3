package player

import "time"

// Ticker delivers the timer's seconds. It mirrors the subset of
// *time.Ticker the player needs so tests can drive ticks by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
	Reset(d time.Duration)
}

// NewTickerFunc creates a started ticker.
type NewTickerFunc func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

func (r realTicker) C() <-chan time.Time   { return r.t.C }
func (r realTicker) Stop()                 { r.t.Stop() }
func (r realTicker) Reset(d time.Duration) { r.t.Reset(d) }
