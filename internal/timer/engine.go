// Package timer implements the routine timer: a tick-driven state machine
// that walks a routine's stretches with rest breaks in between.
//
// The engine never blocks and owns no goroutine. A driver calls Tick once
// per elapsed second while the run is running, tagging each tick with the
// run id it captured at start so ticks from a superseded run are discarded.
// All methods must be called from a single goroutine.
package timer

import (
	"errors"

	"github.com/google/uuid"

	"github.com/CodexForgeBR/stretch/internal/routine"
)

// ErrNoActiveRun is returned by Tick("") when there is no live run: before the
// first Start or after Reset. It marks a driver bug rather than a runtime
// condition.
var ErrNoActiveRun = errors.New("tick without an active run")

// Options configures an Engine.
type Options struct {
	// Stretches resolves stretch default durations.
	Stretches routine.StretchLookup
	// Routines resolves routines for Start.
	Routines RoutineSource
	// Cuer receives countdown cues; nil disables them.
	Cuer Cuer
	// BreakSeconds is the rest between stretches; values below one select
	// BreakDuration.
	BreakSeconds int
	// NewRunID generates run ids; defaults to random UUIDs.
	NewRunID func() string
}

// Engine is the routine timer state machine.
type Engine struct {
	opts     Options
	handlers []CompletionFunc
	cue      CueWindow

	runID     string
	routine   *routine.Routine
	index     int
	phase     Phase
	remaining int
	mode      Mode

	// lastCompleted is the run id whose completion handlers already ran.
	lastCompleted string
}

// New returns an idle engine.
func New(opts Options) *Engine {
	if opts.BreakSeconds <= 0 {
		opts.BreakSeconds = BreakDuration
	}
	if opts.NewRunID == nil {
		opts.NewRunID = func() string { return uuid.NewString() }
	}
	return &Engine{
		opts:  opts,
		phase: PhaseStretch,
		mode:  ModeIdle,
	}
}

// OnCompleted registers a completion handler.
func (e *Engine) OnCompleted(fn CompletionFunc) {
	if fn != nil {
		e.handlers = append(e.handlers, fn)
	}
}

// Snapshot returns a copy of the current run state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		RunID:     e.runID,
		Index:     e.index,
		Phase:     e.phase,
		Remaining: e.remaining,
		Mode:      e.mode,
	}
	if e.routine != nil {
		r := e.routine.Clone()
		s.Routine = &r
	}
	return s
}

// RunID returns the id of the live run, or "" when idle.
func (e *Engine) RunID() string {
	return e.runID
}

// Mode returns the current run mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// BreakSeconds returns the configured rest length.
func (e *Engine) BreakSeconds() int {
	return e.opts.BreakSeconds
}

// Start looks up routineID and starts playing it. An unknown id leaves the
// engine untouched and returns false.
func (e *Engine) Start(routineID string) bool {
	if e.opts.Routines == nil {
		return false
	}
	r, ok := e.opts.Routines.RoutineByID(routineID)
	if !ok {
		return false
	}
	e.StartRoutine(r)
	return true
}

// StartRoutine starts a new run of r, superseding any live run. The items are
// snapshotted, so later edits to the stored routine do not affect the run.
// A routine without items completes immediately.
func (e *Engine) StartRoutine(r routine.Routine) {
	snapshot := r.Clone()
	e.routine = &snapshot
	e.runID = e.opts.NewRunID()
	e.index = 0
	e.phase = PhaseStretch
	e.cue.Clear()

	if len(snapshot.Items) == 0 {
		e.remaining = 0
		e.mode = ModeCompleted
		return
	}
	e.remaining = e.durationAt(0)
	e.mode = ModeRunning
	e.observeCue()
}

// Pause freezes a running countdown.
func (e *Engine) Pause() bool {
	if e.mode != ModeRunning {
		return false
	}
	e.mode = ModePaused
	e.observeCue()
	return true
}

// Resume continues a paused countdown from the frozen remaining value.
func (e *Engine) Resume() bool {
	if e.mode != ModePaused {
		return false
	}
	e.mode = ModeRunning
	e.observeCue()
	return true
}

// Reset returns to idle and drops the live run. A completion that has not
// fired yet for that run never will.
func (e *Engine) Reset() {
	e.runID = ""
	e.routine = nil
	e.index = 0
	e.remaining = 0
	e.phase = PhaseStretch
	e.mode = ModeIdle
	e.cue.Clear()
}

// Seek jumps to the stretch at target. Negative targets are ignored, targets
// past the last item complete the run. Seeking always lands on a stretch
// phase and keeps the running or paused mode. It returns whether the state
// changed.
func (e *Engine) Seek(target int) bool {
	if e.routine == nil || (e.mode != ModeRunning && e.mode != ModePaused) {
		return false
	}
	if target < 0 {
		return false
	}
	if target >= len(e.routine.Items) {
		e.index = len(e.routine.Items) - 1
		e.complete()
		return true
	}
	e.index = target
	e.phase = PhaseStretch
	e.remaining = e.durationAt(target)
	e.cue.Clear()
	e.observeCue()
	return true
}

// Tick advances the countdown by one second for the run identified by runID.
// Ticks for another run, or while the run is not running, change nothing and
// return false.
func (e *Engine) Tick(runID string) (bool, error) {
	if runID == "" && e.runID == "" {
		return false, ErrNoActiveRun
	}
	if runID != e.runID || e.mode != ModeRunning {
		return false, nil
	}

	if e.remaining > 1 {
		e.remaining--
		e.observeCue()
		return true, nil
	}

	switch e.phase {
	case PhaseStretch:
		if e.index+1 >= len(e.routine.Items) {
			e.complete()
			return true, nil
		}
		e.phase = PhaseBreak
		e.remaining = e.opts.BreakSeconds
	case PhaseBreak:
		e.index++
		e.phase = PhaseStretch
		e.remaining = e.durationAt(e.index)
	}
	e.observeCue()
	return true, nil
}

// complete moves the run to its terminal state and fires the completion
// handlers once per run id.
func (e *Engine) complete() {
	e.mode = ModeCompleted
	e.remaining = 0
	e.cue.Clear()

	if len(e.routine.Items) == 0 || e.lastCompleted == e.runID {
		return
	}
	e.lastCompleted = e.runID

	c := Completion{
		RunID:        e.runID,
		Routine:      e.routine.Clone(),
		TotalSeconds: routine.TotalSeconds(e.routine.Items, e.opts.Stretches),
		TotalMinutes: routine.TotalMinutes(e.routine.Items, e.opts.Stretches),
	}
	for _, fn := range e.handlers {
		fn(c)
	}
}

func (e *Engine) durationAt(i int) int {
	return routine.DurationOf(e.routine.Items[i], e.opts.Stretches)
}

func (e *Engine) observeCue() {
	due := e.cue.Observe(Snapshot{Mode: e.mode, Phase: e.phase, Remaining: e.remaining})
	if !due || e.opts.Cuer == nil {
		return
	}
	e.opts.Cuer.PlayCue()
}
