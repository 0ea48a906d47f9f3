// Package logging writes leveled, colored status lines for the stretch CLI.
//
// Lines go to stderr by default so listings and the routine display on stdout
// stay pipeable. Debug lines appear only in verbose mode. Writes are
// serialized because the keyboard reader reports bad input from its own
// goroutine while a routine plays.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type level struct {
	tag   string
	paint func(a ...any) string
}

var (
	levelInfo    = level{"[INFO]", color.New(color.FgBlue).SprintFunc()}
	levelSuccess = level{"[OK]", color.New(color.FgGreen).SprintFunc()}
	levelWarn    = level{"[WARN]", color.New(color.FgYellow).SprintFunc()}
	levelError   = level{"[ERROR]", color.New(color.FgRed).SprintFunc()}
	levelDebug   = level{"[DEBUG]", color.New(color.Faint).SprintFunc()}

	headerPaint = color.New(color.FgCyan, color.Bold).SprintFunc()
)

const headerWidth = 51

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	verbose bool
)

// SetOutput redirects log lines to w and returns a func that restores the
// previous writer.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		output = prev
	}
}

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

func emit(l level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(output, l.paint(l.tag)+" "+msg)
}

// Info prints an informational line.
func Info(msg string) { emit(levelInfo, msg) }

// Infof is Info with formatting.
func Infof(format string, args ...any) { emit(levelInfo, fmt.Sprintf(format, args...)) }

// Success confirms a finished action.
func Success(msg string) { emit(levelSuccess, msg) }

// Warn prints a warning.
func Warn(msg string) { emit(levelWarn, msg) }

// Error prints an error.
func Error(msg string) { emit(levelError, msg) }

// Header prints msg between two rules, for long waits and other sections.
func Header(msg string) {
	rule := headerPaint(strings.Repeat("━", headerWidth))
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(output, "%s\n%s\n%s\n", rule, headerPaint(msg), rule)
}

// Debug prints msg in verbose mode only.
func Debug(msg string) {
	mu.Lock()
	on := verbose
	mu.Unlock()
	if on {
		emit(levelDebug, msg)
	}
}

// Debugf is Debug with formatting. Arguments are not formatted unless
// verbose mode is on.
func Debugf(format string, args ...any) {
	mu.Lock()
	on := verbose
	mu.Unlock()
	if on {
		emit(levelDebug, fmt.Sprintf(format, args...))
	}
}

// FormatDuration renders seconds as "45s", "1m 30s" or "1h 1m 1s".
func FormatDuration(seconds int) string {
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatClock renders a countdown as minutes and zero-padded seconds.
// Negative values render as "0:00".
//
//	FormatClock(5)   => "0:05"
//	FormatClock(75)  => "1:15"
//	FormatClock(600) => "10:00"
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
