package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/stretch/internal/config"
)

func renderHelp(t *testing.T, args ...string) string {
	t.Helper()
	cfg := config.NewDefaultConfig()

	root := &cobra.Command{Use: "stretch", Short: "Personal stretching companion", RunE: func(*cobra.Command, []string) error { return nil }}
	BindFlags(root, cfg)
	SetCustomHelp(root)

	run := &cobra.Command{Use: "run <routine-id>", Short: "Play a routine", RunE: func(*cobra.Command, []string) error { return nil }}
	BindRunFlags(run, cfg, &RunOptions{})
	log := &cobra.Command{Use: "log", Short: "Show the activity log", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(run, log)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append(args, "--help"))
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestHelpTemplate_Root(t *testing.T) {
	out := renderHelp(t)

	for _, want := range []string{
		"Personal stretching companion",
		"USAGE",
		"COMMANDS",
		"run",
		"FLAGS",
		"--data-dir",
		"--break-seconds",
		"--cue-command",
		"KEYS DURING A ROUTINE",
		"CONFIG FILE",
		"EXIT CODES",
		"NotFound",
		"Interrupted",
		"EXAMPLES",
	} {
		assert.Contains(t, out, want)
	}
}

func TestHelpTemplate_Run(t *testing.T) {
	out := renderHelp(t, "run")

	assert.Contains(t, out, "stretch run <routine-id>")
	assert.Contains(t, out, "--at")
	assert.Contains(t, out, "--no-cue")
	assert.NotContains(t, out, "--tick-millis", "hidden flag")
	assert.Contains(t, out, "GLOBAL FLAGS")
	assert.Contains(t, out, "KEYS DURING A ROUTINE")
	assert.NotContains(t, out, "EXIT CODES")
}

func TestHelpTemplate_OtherSubcommand(t *testing.T) {
	out := renderHelp(t, "log")

	assert.Contains(t, out, "Show the activity log")
	assert.NotContains(t, out, "KEYS DURING A ROUTINE")
	assert.NotContains(t, out, "EXAMPLES")
}
