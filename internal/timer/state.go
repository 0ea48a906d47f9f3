package timer

import "github.com/CodexForgeBR/stretch/internal/routine"

// Mode is the run mode of the engine.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeRunning   Mode = "running"
	ModePaused    Mode = "paused"
	ModeCompleted Mode = "completed"
)

// Phase tells whether the countdown belongs to a stretch or to the rest
// break that follows it.
type Phase string

const (
	PhaseStretch Phase = "stretch"
	PhaseBreak   Phase = "break"
)

// BreakDuration is the default rest, in seconds, between two stretches.
const BreakDuration = 5

// CueWindowSeconds is the number of final stretch seconds that get a cue.
const CueWindowSeconds = 3

// Snapshot is a read-only copy of the run state.
type Snapshot struct {
	RunID     string
	Routine   *routine.Routine
	Index     int
	Phase     Phase
	Remaining int
	Mode      Mode
}

// Active reports whether a routine is loaded (any mode but idle).
func (s Snapshot) Active() bool {
	return s.Mode != ModeIdle && s.Routine != nil
}

// Item returns the routine item at the current index.
func (s Snapshot) Item() (routine.Item, bool) {
	if s.Routine == nil || s.Index < 0 || s.Index >= len(s.Routine.Items) {
		return routine.Item{}, false
	}
	return s.Routine.Items[s.Index], true
}

// NextItem returns the item after the current one, the stretch a break
// leads into.
func (s Snapshot) NextItem() (routine.Item, bool) {
	if s.Routine == nil || s.Index+1 >= len(s.Routine.Items) {
		return routine.Item{}, false
	}
	return s.Routine.Items[s.Index+1], true
}

// Completion describes a finished run, as handed to completion handlers.
type Completion struct {
	RunID        string
	Routine      routine.Routine
	TotalSeconds int
	TotalMinutes int
}

// CompletionFunc receives a finished run. It is called at most once per run.
type CompletionFunc func(Completion)

// RoutineSource resolves routines at start time.
type RoutineSource interface {
	RoutineByID(id string) (routine.Routine, bool)
}

// Cuer plays the short countdown tone. Calls are fire-and-forget.
type Cuer interface {
	PlayCue()
}

// CuerFunc adapts a function to Cuer.
type CuerFunc func()

// PlayCue calls f.
func (f CuerFunc) PlayCue() { f() }
