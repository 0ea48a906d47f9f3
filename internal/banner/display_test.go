package banner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/stretch/internal/catalog"
	"github.com/CodexForgeBR/stretch/internal/routine"
	"github.com/CodexForgeBR/stretch/internal/timer"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Stretch{
		{ID: "neck", Name: "Neck roll", Duration: 30, Tags: []string{"Neck"}, Instructions: "Roll slowly."},
		{ID: "cat", Name: "Cat-cow", Duration: 45, Tags: []string{"Spine & Back"}},
	})
	require.NoError(t, err)
	return c
}

func testRoutine() routine.Routine {
	return routine.Routine{ID: "r1", Name: "Morning", Items: []routine.Item{
		{StretchID: "neck"},
		{StretchID: "cat", Duration: routine.Seconds(60)},
	}}
}

func TestPrintRunStart(t *testing.T) {
	var buf bytes.Buffer
	PrintRunStart(&buf, testRoutine(), testCatalog(t), 5, "run-1")
	out := buf.String()

	assert.Contains(t, out, "stretch - Morning")
	assert.Contains(t, out, "Stretches:  2")
	assert.Contains(t, out, "1m 30s (+ 5s of breaks)")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "═══")
}

func TestPrintStretch(t *testing.T) {
	r := testRoutine()
	var buf bytes.Buffer
	PrintStretch(&buf, timer.Snapshot{Routine: &r, Index: 0}, testCatalog(t))

	assert.Contains(t, buf.String(), "[1/2] Neck roll")
	assert.Contains(t, buf.String(), "Roll slowly.")

	buf.Reset()
	PrintStretch(&buf, timer.Snapshot{Routine: &r, Index: 5}, testCatalog(t))
	assert.Empty(t, buf.String())
}

func TestStatusLine(t *testing.T) {
	r := testRoutine()
	c := testCatalog(t)

	tests := []struct {
		name string
		snap timer.Snapshot
		want string
	}{
		{
			name: "stretch running",
			snap: timer.Snapshot{Routine: &r, Index: 1, Phase: timer.PhaseStretch, Remaining: 65, Mode: timer.ModeRunning},
			want: "[2/2] Cat-cow 1:05",
		},
		{
			name: "break names the next stretch",
			snap: timer.Snapshot{Routine: &r, Index: 0, Phase: timer.PhaseBreak, Remaining: 4, Mode: timer.ModeRunning},
			want: "Break 0:04 · next: Cat-cow",
		},
		{
			name: "paused",
			snap: timer.Snapshot{Routine: &r, Index: 0, Phase: timer.PhaseStretch, Remaining: 9, Mode: timer.ModePaused},
			want: "[1/2] Neck roll 0:09 (paused)",
		},
		{
			name: "no routine",
			snap: timer.Snapshot{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLine(tt.snap, c))
		})
	}
}

func TestStatusLine_UnknownStretchUsesID(t *testing.T) {
	r := routine.Routine{Items: []routine.Item{{StretchID: "ghost", Duration: routine.Seconds(3)}}}
	line := StatusLine(timer.Snapshot{Routine: &r, Remaining: 3, Mode: timer.ModeRunning}, testCatalog(t))
	assert.Equal(t, "[1/1] ghost 0:03", line)
}

func TestPrintStatus_RewritesLine(t *testing.T) {
	r := testRoutine()
	var buf bytes.Buffer
	PrintStatus(&buf, timer.Snapshot{Routine: &r, Remaining: 30, Mode: timer.ModeRunning}, testCatalog(t))
	assert.True(t, strings.HasPrefix(buf.String(), "\r"))
	assert.Contains(t, buf.String(), "Neck roll 0:30")
}

func TestPrintCompletion(t *testing.T) {
	var buf bytes.Buffer
	PrintCompletion(&buf, timer.Completion{Routine: testRoutine(), TotalMinutes: 2}, "2026-10-19")
	out := buf.String()

	assert.Contains(t, out, "✓ Morning complete!")
	assert.Contains(t, out, "Stretches:  2")
	assert.Contains(t, out, "Logged:     2 min on 2026-10-19")

	buf.Reset()
	PrintCompletion(&buf, timer.Completion{Routine: testRoutine()}, "")
	assert.NotContains(t, buf.String(), "Logged")
}

func TestPrintInterrupted(t *testing.T) {
	var buf bytes.Buffer
	PrintInterrupted(&buf, 1, 4)
	assert.Contains(t, buf.String(), "stopped at stretch 2 of 4")
	assert.Contains(t, buf.String(), "Not logged")
}
