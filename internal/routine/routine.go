// Package routine models stretch routines and the store that owns them.
package routine

import (
	"math"

	"github.com/CodexForgeBR/stretch/internal/catalog"
)

// DefaultItemDuration is the hold length, in seconds, given to an item added
// for a stretch that has no default of its own.
const DefaultItemDuration = 30

// Item is one step of a routine. A nil Duration means "unset" and defers to
// the stretch default.
type Item struct {
	StretchID string `json:"stretchId"`
	Duration  *int   `json:"duration,omitempty"`
}

// Routine is a named ordered sequence of items.
type Routine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// StretchLookup resolves stretches by id.
type StretchLookup interface {
	StretchByID(id string) (catalog.Stretch, bool)
}

// Seconds returns a pointer to n, for building items with explicit durations.
func Seconds(n int) *int {
	return &n
}

// NewItem returns an item for stretchID. When seconds is nil the item takes
// the stretch default, or fallback when the stretch has none. A fallback
// below one selects DefaultItemDuration.
func NewItem(stretches StretchLookup, stretchID string, seconds *int, fallback int) Item {
	if seconds != nil {
		return Item{StretchID: stretchID, Duration: Seconds(*seconds)}
	}
	d := fallback
	if d < 1 {
		d = DefaultItemDuration
	}
	if stretches != nil {
		if s, ok := stretches.StretchByID(stretchID); ok && s.Duration > 0 {
			d = s.Duration
		}
	}
	return Item{StretchID: stretchID, Duration: Seconds(d)}
}

// DurationOf resolves the hold length of item: the explicit item duration,
// else the stretch default, else zero.
func DurationOf(item Item, stretches StretchLookup) int {
	if item.Duration != nil {
		if *item.Duration < 0 {
			return 0
		}
		return *item.Duration
	}
	if stretches != nil {
		if s, ok := stretches.StretchByID(item.StretchID); ok {
			return s.Duration
		}
	}
	return 0
}

// TotalSeconds sums the resolved durations of items. Breaks are not counted.
func TotalSeconds(items []Item, stretches StretchLookup) int {
	total := 0
	for _, item := range items {
		total += DurationOf(item, stretches)
	}
	return total
}

// TotalMinutes returns TotalSeconds rounded to the nearest minute.
func TotalMinutes(items []Item, stretches StretchLookup) int {
	return int(math.Round(float64(TotalSeconds(items, stretches)) / 60))
}

// Clone returns a deep copy of r so that later edits to the stored routine
// cannot reach a snapshot.
func (r Routine) Clone() Routine {
	out := Routine{ID: r.ID, Name: r.Name}
	if r.Items != nil {
		out.Items = make([]Item, len(r.Items))
		for i, item := range r.Items {
			out.Items[i] = Item{StretchID: item.StretchID}
			if item.Duration != nil {
				out.Items[i].Duration = Seconds(*item.Duration)
			}
		}
	}
	return out
}
