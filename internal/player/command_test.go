package player

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"", Command{Kind: CmdToggle}},
		{"   ", Command{Kind: CmdToggle}},
		{"p", Command{Kind: CmdPause}},
		{"PAUSE", Command{Kind: CmdPause}},
		{"r", Command{Kind: CmdResume}},
		{"n", Command{Kind: CmdNext}},
		{"skip", Command{Kind: CmdNext}},
		{"b", Command{Kind: CmdPrev}},
		{"back", Command{Kind: CmdPrev}},
		{"q", Command{Kind: CmdStop}},
		{"stop", Command{Kind: CmdStop}},
		{"?", Command{Kind: CmdStatus}},
		{"g 1", Command{Kind: CmdGoto, Target: 0}},
		{"goto 4", Command{Kind: CmdGoto, Target: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr string
	}{
		{"g", "goto needs a stretch number"},
		{"g x", "invalid stretch number"},
		{"goto 0", "invalid stretch number"},
		{"dance", "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReadCommands(t *testing.T) {
	var errs []error
	in := strings.NewReader("p\n\nbogus\ng 2\nq\n")

	var got []Command
	for cmd := range ReadCommands(context.Background(), in, func(err error) { errs = append(errs, err) }) {
		got = append(got, cmd)
	}

	assert.Equal(t, []Command{
		{Kind: CmdPause},
		{Kind: CmdToggle},
		{Kind: CmdGoto, Target: 1},
		{Kind: CmdStop},
	}, got)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bogus")
}
