package activity

import (
	"errors"
	"time"

	"github.com/CodexForgeBR/stretch/internal/routine"
)

// StorageKey identifies the persisted activity document.
const StorageKey = "stretch.activities"

// createdLayout keeps a fixed width so creation stamps sort lexically.
const createdLayout = "2006-01-02T15:04:05.000Z"

var (
	// ErrNameRequired is returned when an entry names neither a routine nor a custom activity.
	ErrNameRequired = errors.New("entry needs a routine or a name")
	// ErrNotFound is returned for an unknown entry id.
	ErrNotFound = errors.New("activity entry not found")
)

// RoutineLookup resolves routines referenced by manual entries.
type RoutineLookup interface {
	RoutineByID(id string) (routine.Routine, bool)
}

// Options configures a Log.
type Options struct {
	Routines  RoutineLookup
	Stretches routine.StretchLookup
	Now       func() time.Time
	NewID     func() string
}

// Log is the ordered list of activity entries. Like the routine store it is
// used from a single goroutine.
type Log struct {
	entries []Entry
	opts    Options
}

// AddRequest describes a new entry. Either RoutineID or CustomName must be set.
type AddRequest struct {
	RoutineID   string
	RoutineName string
	CustomName  string
	// Minutes overrides the duration resolved from the routine.
	Minutes     *int
	Description string
	// Date defaults to today.
	Date   string
	Manual bool
}

// Patch edits an entry. Nil fields are left alone; an empty name or
// description and a non-positive duration clear the field.
type Patch struct {
	CustomName  *string
	Description *string
	Minutes     *int
}

// NewLog returns a log seeded with entries.
func NewLog(entries []Entry, opts Options) *Log {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = routine.MakeID
	}
	return &Log{entries: append([]Entry(nil), entries...), opts: opts}
}

// Entries returns a copy of all entries in insertion order.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// List is Entries sorted newest day first, then by creation time.
func (l *Log) List() []Entry {
	out := l.Entries()
	sortEntries(out, true)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// EntryByID returns the entry with the given id.
func (l *Log) EntryByID(id string) (Entry, bool) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Add appends an entry. A routine id fills in the routine name and total
// minutes from the routine store unless the request already carries them.
func (l *Log) Add(req AddRequest) (Entry, error) {
	if req.RoutineID == "" && optional(req.CustomName) == nil {
		return Entry{}, ErrNameRequired
	}

	date := l.opts.Now()
	if req.Date != "" {
		d, err := ParseDate(req.Date)
		if err != nil {
			return Entry{}, err
		}
		date = d
	}

	var resolved *routine.Routine
	if req.RoutineID != "" && l.opts.Routines != nil {
		if r, ok := l.opts.Routines.RoutineByID(req.RoutineID); ok {
			resolved = &r
		}
	}

	e := Entry{
		ID:          l.opts.NewID(),
		RoutineID:   optional(req.RoutineID),
		CustomName:  optional(req.CustomName),
		Description: optional(req.Description),
		Date:        DateKey(date),
		Manual:      req.Manual,
		CreatedAt:   l.opts.Now().UTC().Format(createdLayout),
	}

	switch {
	case req.RoutineName != "":
		e.RoutineName = optional(req.RoutineName)
	case resolved != nil:
		e.RoutineName = optional(resolved.Name)
	case e.CustomName == nil:
		name := DefaultName
		e.RoutineName = &name
	}

	switch {
	case req.Minutes != nil:
		m := *req.Minutes
		e.Duration = &m
	case resolved != nil:
		m := routine.TotalMinutes(resolved.Items, l.opts.Stretches)
		e.Duration = &m
	}

	l.entries = append(l.entries, e)
	return e, nil
}

// RecordCompletion logs a finished timer run.
func (l *Log) RecordCompletion(r routine.Routine, totalMinutes int) (Entry, error) {
	return l.Add(AddRequest{
		RoutineID:   r.ID,
		RoutineName: r.Name,
		Minutes:     &totalMinutes,
	})
}

// Update applies p to the entry with the given id.
func (l *Log) Update(id string, p Patch) (Entry, error) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, ErrNotFound
	}
	e := &l.entries[i]
	if p.CustomName != nil {
		e.CustomName = optional(*p.CustomName)
	}
	if p.Description != nil {
		e.Description = optional(*p.Description)
	}
	if p.Minutes != nil {
		if *p.Minutes > 0 {
			m := *p.Minutes
			e.Duration = &m
		} else {
			e.Duration = nil
		}
	}
	return *e, nil
}

// Delete removes the entry with the given id.
func (l *Log) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return ErrNotFound
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return nil
}

func (l *Log) index(id string) int {
	for i, e := range l.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
