// Package player drives the routine timer in real time.
//
// A Player owns its engine for the length of a run. One goroutine selects
// over context cancellation, keyboard commands and the ticker; it is the only
// caller of the engine, which keeps the engine lock-free.
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/CodexForgeBR/stretch/internal/banner"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/routine"
	"github.com/CodexForgeBR/stretch/internal/timer"
)

var (
	// ErrRoutineNotFound is returned when the routine id is unknown.
	ErrRoutineNotFound = errors.New("routine not found")
	// ErrStopped is returned when the user stops the routine.
	ErrStopped = errors.New("routine stopped")
	// ErrSuperseded is returned when another run replaced this one on the engine.
	ErrSuperseded = errors.New("run superseded")
)

// DefaultInterval is one timer second.
const DefaultInterval = time.Second

// Options configures a Player.
type Options struct {
	Engine    *timer.Engine
	Stretches routine.StretchLookup
	// Out receives banners and the status line; nil discards them.
	Out io.Writer
	// Interval is the length of one timer second.
	Interval  time.Duration
	NewTicker NewTickerFunc
}

// Result describes how a run ended.
type Result struct {
	// Completion is set when the routine ran to the end.
	Completion *timer.Completion
	// Last is the state just before the run ended.
	Last timer.Snapshot
}

// Player plays routines on an engine.
type Player struct {
	engine    *timer.Engine
	stretches routine.StretchLookup
	out       io.Writer
	interval  time.Duration
	newTicker NewTickerFunc

	completions map[string]timer.Completion
}

// New returns a Player and subscribes it to the engine's completions.
func New(opts Options) *Player {
	p := &Player{
		engine:      opts.Engine,
		stretches:   opts.Stretches,
		out:         opts.Out,
		interval:    opts.Interval,
		newTicker:   opts.NewTicker,
		completions: make(map[string]timer.Completion),
	}
	if p.out == nil {
		p.out = io.Discard
	}
	if p.interval <= 0 {
		p.interval = DefaultInterval
	}
	if p.newTicker == nil {
		p.newTicker = NewRealTicker
	}
	p.engine.OnCompleted(func(c timer.Completion) {
		p.completions[c.RunID] = c
	})
	return p
}

// Run plays routineID until it completes, the user stops it, or ctx is done.
// commands may be nil. A stopped or cancelled run resets the engine, so its
// completion never fires.
func (p *Player) Run(ctx context.Context, routineID string, commands <-chan Command) (Result, error) {
	if !p.engine.Start(routineID) {
		return Result{}, fmt.Errorf("%w: %s", ErrRoutineNotFound, routineID)
	}
	runID := p.engine.RunID()
	snap := p.engine.Snapshot()
	logging.Debugf("run %s started for routine %s", runID, routineID)

	banner.PrintRunStart(p.out, *snap.Routine, p.stretches, p.engine.BreakSeconds(), runID)
	if snap.Mode == timer.ModeCompleted {
		return p.finish(runID, snap), nil
	}
	banner.PrintStretch(p.out, snap, p.stretches)
	banner.PrintStatus(p.out, snap, p.stretches)

	ticker := p.newTicker(p.interval)
	defer ticker.Stop()
	ticking := true

	for {
		prev := snap

		select {
		case <-ctx.Done():
			return p.abort(prev), ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			if cmd.Kind == CmdStop {
				return p.abort(prev), ErrStopped
			}
			p.apply(cmd, prev)

		case <-ticker.C():
			if p.engine.RunID() != runID {
				logging.Debugf("run %s superseded by %s", runID, p.engine.RunID())
				return Result{Last: prev}, ErrSuperseded
			}
			if _, err := p.engine.Tick(runID); err != nil {
				return Result{Last: prev}, err
			}
		}

		snap = p.engine.Snapshot()
		if snap.Mode == timer.ModeCompleted {
			return p.finish(runID, snap), nil
		}

		// The ticker only runs while the countdown does; resuming restarts a
		// full second.
		switch {
		case snap.Mode == timer.ModePaused && ticking:
			ticker.Stop()
			ticking = false
		case snap.Mode == timer.ModeRunning && !ticking:
			ticker.Reset(p.interval)
			ticking = true
		}

		p.render(prev, snap)
	}
}

func (p *Player) apply(cmd Command, s timer.Snapshot) {
	switch cmd.Kind {
	case CmdToggle:
		if !p.engine.Pause() {
			p.engine.Resume()
		}
	case CmdPause:
		p.engine.Pause()
	case CmdResume:
		p.engine.Resume()
	case CmdNext:
		p.engine.Seek(s.Index + 1)
	case CmdPrev:
		p.engine.Seek(s.Index - 1)
	case CmdGoto:
		p.engine.Seek(cmd.Target)
	case CmdStatus:
		fmt.Fprintln(p.out)
	}
}

func (p *Player) render(prev, cur timer.Snapshot) {
	if cur.Phase == timer.PhaseStretch && (prev.Phase != cur.Phase || prev.Index != cur.Index) {
		fmt.Fprintln(p.out)
		banner.PrintStretch(p.out, cur, p.stretches)
	}
	banner.PrintStatus(p.out, cur, p.stretches)
}

func (p *Player) finish(runID string, last timer.Snapshot) Result {
	fmt.Fprintln(p.out)
	res := Result{Last: last}
	if c, ok := p.completions[runID]; ok {
		res.Completion = &c
		delete(p.completions, runID)
	}
	return res
}

func (p *Player) abort(last timer.Snapshot) Result {
	p.engine.Reset()
	total := 0
	if last.Routine != nil {
		total = len(last.Routine.Items)
	}
	banner.PrintInterrupted(p.out, last.Index, total)
	return Result{Last: last}
}
