package timer

// CueWindow decides when the countdown cue sounds. It fires once for each
// distinct remaining value in 1..CueWindowSeconds while a stretch is running,
// and forgets what it fired as soon as the run leaves that window.
type CueWindow struct {
	last int
}

// Observe inspects a state and reports whether a cue is due.
func (w *CueWindow) Observe(s Snapshot) bool {
	if s.Mode != ModeRunning || s.Phase != PhaseStretch || s.Remaining > CueWindowSeconds {
		w.last = 0
		return false
	}
	if s.Remaining <= 0 || s.Remaining == w.last {
		return false
	}
	w.last = s.Remaining
	return true
}

// Clear forgets the last cued second.
func (w *CueWindow) Clear() {
	w.last = 0
}
