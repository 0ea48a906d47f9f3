// Package banner renders the colored terminal output of the stretch CLI:
// run banners and the status line while a routine plays, plus the library,
// routine and activity log views.
//
// Every function writes to the given writer so the player can render to any
// terminal and tests can capture output.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/stretch/internal/catalog"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/routine"
	"github.com/CodexForgeBR/stretch/internal/timer"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
	dimColor     = color.New(color.Faint).SprintFunc()
	breakColor   = color.New(color.FgMagenta).SprintFunc()
	stretchColor = color.New(color.FgGreen).SprintFunc()
)

const separatorWidth = 51

func separator(paint func(a ...any) string) string {
	return paint(strings.Repeat("═", separatorWidth))
}

// PrintRunStart displays the banner shown when a routine starts.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  stretch - Morning mobility
//	═══════════════════════════════════════════════════
//	  Stretches:  4
//	  Duration:   3m 20s (+ 15s of breaks)
//	  Run:        5f0c...
//	═══════════════════════════════════════════════════
func PrintRunStart(w io.Writer, r routine.Routine, stretches routine.StretchLookup, breakSeconds int, runID string) {
	sep := separator(headerColor)
	total := routine.TotalSeconds(r.Items, stretches)
	breaks := 0
	if len(r.Items) > 1 {
		breaks = (len(r.Items) - 1) * breakSeconds
	}

	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor("  stretch - "+r.Name))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Stretches:  %d\n", len(r.Items))
	fmt.Fprintf(w, "  Duration:   %s (+ %s of breaks)\n", logging.FormatDuration(total), logging.FormatDuration(breaks))
	fmt.Fprintf(w, "  Run:        %s\n", runID)
	fmt.Fprintln(w, sep)
}

// PrintStretch introduces the stretch at the current index with its
// instructions.
func PrintStretch(w io.Writer, s timer.Snapshot, stretches routine.StretchLookup) {
	if s.Routine == nil || s.Index >= len(s.Routine.Items) {
		return
	}
	st := lookup(stretches, s.Routine.Items[s.Index].StretchID)
	fmt.Fprintf(w, "\n%s %s\n", stretchColor(fmt.Sprintf("[%d/%d]", s.Index+1, len(s.Routine.Items))), st.Name)
	if st.Instructions != "" {
		fmt.Fprintf(w, "  %s\n", dimColor(st.Instructions))
	}
}

// StatusLine formats the one-line countdown for a snapshot, e.g.
// "[2/4] Cat-cow 0:25" or "Break 0:04 · next: Child's pose (paused)".
func StatusLine(s timer.Snapshot, stretches routine.StretchLookup) string {
	if s.Routine == nil || len(s.Routine.Items) == 0 {
		return ""
	}
	var b strings.Builder
	switch s.Phase {
	case timer.PhaseBreak:
		b.WriteString(breakColor("Break"))
		b.WriteString(" " + logging.FormatClock(s.Remaining))
		if next, ok := s.NextItem(); ok {
			b.WriteString(" · next: " + lookup(stretches, next.StretchID).Name)
		}
	default:
		item, _ := s.Item()
		fmt.Fprintf(&b, "%s %s %s",
			stretchColor(fmt.Sprintf("[%d/%d]", s.Index+1, len(s.Routine.Items))),
			lookup(stretches, item.StretchID).Name,
			logging.FormatClock(s.Remaining))
	}
	if s.Mode == timer.ModePaused {
		b.WriteString(" " + warnColor("(paused)"))
	}
	return b.String()
}

// PrintStatus rewrites the current terminal line with the status line.
func PrintStatus(w io.Writer, s timer.Snapshot, stretches routine.StretchLookup) {
	fmt.Fprintf(w, "\r\033[K%s", StatusLine(s, stretches))
}

// PrintCompletion displays the banner shown when a routine finishes.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✓ Morning mobility complete!
//	  Stretches:  4
//	  Logged:     3 min on 2026-10-19
//	═══════════════════════════════════════════════════
func PrintCompletion(w io.Writer, c timer.Completion, loggedDate string) {
	sep := separator(successColor)
	fmt.Fprintln(w)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, successColor("  ✓ "+c.Routine.Name+" complete!"))
	fmt.Fprintf(w, "  Stretches:  %d\n", len(c.Routine.Items))
	if loggedDate != "" {
		fmt.Fprintf(w, "  Logged:     %d min on %s\n", c.TotalMinutes, loggedDate)
	}
	fmt.Fprintln(w, sep)
}

// PrintInterrupted displays the banner shown when a routine is stopped early.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ⚠ Routine stopped at stretch 2 of 4
//	  Not logged
//	═══════════════════════════════════════════════════
func PrintInterrupted(w io.Writer, index, total int) {
	sep := separator(warnColor)
	fmt.Fprintln(w)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, warnColor(fmt.Sprintf("  ⚠ Routine stopped at stretch %d of %d", index+1, total)))
	fmt.Fprintln(w, "  Not logged")
	fmt.Fprintln(w, sep)
}

// lookup resolves a stretch, falling back to its id as the name.
func lookup(stretches routine.StretchLookup, id string) catalog.Stretch {
	if stretches != nil {
		if s, ok := stretches.StretchByID(id); ok {
			return s
		}
	}
	return catalog.Stretch{ID: id, Name: id}
}
