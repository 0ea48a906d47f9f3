// Package cue emits the short countdown sound played before each stretch ends.
//
// Emitters never block the caller and never report failures: a missing
// sound player must not disturb a running routine.
package cue

import (
	"io"
	"sync"
)

// Emitter plays one cue.
type Emitter interface {
	PlayCue()
}

// bellChar is the terminal bell.
const bellChar = "\a"

// Bell rings the terminal bell on a writer, usually stdout.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// PlayCue writes the bell character.
func (b *Bell) PlayCue() {
	if b == nil || b.w == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, bellChar)
}

// Multi plays every emitter in order.
type Multi []Emitter

// PlayCue forwards the cue to each emitter.
func (m Multi) PlayCue() {
	for _, e := range m {
		if e != nil {
			e.PlayCue()
		}
	}
}

// Nop ignores cues.
type Nop struct{}

// PlayCue does nothing.
func (Nop) PlayCue() {}
