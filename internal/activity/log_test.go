package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/stretch/internal/catalog"
	"github.com/CodexForgeBR/stretch/internal/routine"
)

type routineMap map[string]routine.Routine

func (m routineMap) RoutineByID(id string) (routine.Routine, bool) {
	r, ok := m[id]
	return r, ok
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestLog(t *testing.T, entries []Entry) (*Log, *fakeClock) {
	t.Helper()
	stretches, err := catalog.New([]catalog.Stretch{
		{ID: "a", Name: "A", Duration: 90},
		{ID: "b", Name: "B", Duration: 60},
	})
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)}
	n := 0
	log := NewLog(entries, Options{
		Routines: routineMap{
			"morning": {ID: "morning", Name: "Morning", Items: []routine.Item{{StretchID: "a"}, {StretchID: "b"}}},
		},
		Stretches: stretches,
		Now:       clock.Now,
		NewID: func() string {
			n++
			return fmt.Sprintf("e%d", n)
		},
	})
	return log, clock
}

func TestAdd_ResolvesRoutine(t *testing.T) {
	log, _ := newTestLog(t, nil)

	e, err := log.Add(AddRequest{RoutineID: "morning", Manual: true})
	require.NoError(t, err)

	assert.Equal(t, "e1", e.ID)
	require.NotNil(t, e.RoutineName)
	assert.Equal(t, "Morning", *e.RoutineName)
	require.NotNil(t, e.Duration)
	assert.Equal(t, 3, *e.Duration, "150 seconds round to 3 minutes")
	assert.Equal(t, "2026-10-19", e.Date)
	assert.True(t, e.Manual)
	assert.Nil(t, e.CustomName)
	assert.Nil(t, e.Description)
	assert.Len(t, e.CreatedAt, len("2026-10-19T09:30:00.000Z"))
}

func TestAdd_UnknownRoutineFallsBackToDefaultName(t *testing.T) {
	log, _ := newTestLog(t, nil)

	e, err := log.Add(AddRequest{RoutineID: "gone"})
	require.NoError(t, err)
	require.NotNil(t, e.RoutineName)
	assert.Equal(t, DefaultName, *e.RoutineName)
	assert.Nil(t, e.Duration)
}

func TestAdd_Custom(t *testing.T) {
	log, _ := newTestLog(t, nil)

	e, err := log.Add(AddRequest{
		CustomName:  "  Yoga class ",
		Minutes:     routine.Seconds(75),
		Description: " studio ",
		Date:        "2026-10-01",
		Manual:      true,
	})
	require.NoError(t, err)

	assert.Nil(t, e.RoutineID)
	assert.Nil(t, e.RoutineName, "custom entries carry no routine name")
	require.NotNil(t, e.CustomName)
	assert.Equal(t, "Yoga class", *e.CustomName)
	assert.Equal(t, "studio", *e.Description)
	assert.Equal(t, 75, *e.Duration)
	assert.Equal(t, "2026-10-01", e.Date)
}

func TestAdd_Errors(t *testing.T) {
	log, _ := newTestLog(t, nil)

	_, err := log.Add(AddRequest{CustomName: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = log.Add(AddRequest{CustomName: "x", Date: "19/10/2026"})
	assert.Error(t, err)
	assert.Equal(t, 0, log.Len())
}

func TestRecordCompletion(t *testing.T) {
	log, _ := newTestLog(t, nil)

	r := routine.Routine{ID: "morning", Name: "Renamed run", Items: []routine.Item{{StretchID: "a"}}}
	e, err := log.RecordCompletion(r, 2)
	require.NoError(t, err)

	assert.Equal(t, "morning", *e.RoutineID)
	assert.Equal(t, "Renamed run", *e.RoutineName, "the run's snapshot name wins")
	assert.Equal(t, 2, *e.Duration)
	assert.False(t, e.Manual)
}

func TestUpdate(t *testing.T) {
	log, _ := newTestLog(t, nil)
	e, err := log.Add(AddRequest{RoutineID: "morning", Description: "before"})
	require.NoError(t, err)

	name := " Evening "
	empty := ""
	zero := 0
	got, err := log.Update(e.ID, Patch{CustomName: &name, Description: &empty, Minutes: &zero})
	require.NoError(t, err)

	assert.Equal(t, "Evening", *got.CustomName)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.Duration)
	assert.Equal(t, "Morning", *got.RoutineName, "untouched fields stay")
	assert.Equal(t, "Evening", DisplayName(got))

	stored, ok := log.EntryByID(e.ID)
	require.True(t, ok)
	assert.Equal(t, got, stored)

	_, err = log.Update("missing", Patch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	log, _ := newTestLog(t, nil)
	first, _ := log.Add(AddRequest{CustomName: "one"})
	second, _ := log.Add(AddRequest{CustomName: "two"})

	require.NoError(t, log.Delete(first.ID))
	assert.ErrorIs(t, log.Delete(first.ID), ErrNotFound)

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)
}

func TestDisplayName(t *testing.T) {
	custom, routineName, empty := "Custom", "Routine A", ""

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"custom wins", Entry{CustomName: &custom, RoutineName: &routineName}, "Custom"},
		{"routine name", Entry{RoutineName: &routineName}, "Routine A"},
		{"empty custom", Entry{CustomName: &empty, RoutineName: &routineName}, "Routine A"},
		{"nothing", Entry{}, DefaultName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.entry))
		})
	}
}

func TestFormatDurationLabel(t *testing.T) {
	tests := []struct {
		minutes *int
		want    string
	}{
		{nil, ""},
		{routine.Seconds(0), ""},
		{routine.Seconds(-3), ""},
		{routine.Seconds(1), "1 min"},
		{routine.Seconds(59), "59 min"},
		{routine.Seconds(60), "1h 0m"},
		{routine.Seconds(135), "2h 15m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDurationLabel(tt.minutes))
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-02-28 ")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", DateKey(d))

	_, err = ParseDate("2026-02-30")
	assert.Error(t, err)
}
