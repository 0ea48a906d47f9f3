package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/stretch/internal/activity"
	"github.com/CodexForgeBR/stretch/internal/cli"
	"github.com/CodexForgeBR/stretch/internal/config"
	"github.com/CodexForgeBR/stretch/internal/exitcode"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/player"
	"github.com/CodexForgeBR/stretch/internal/routine"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errStretchNotFound = errors.New("stretch not found")

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stdin)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		code := exitCodeFor(err)
		// The interrupted banner already told the user.
		if code != exitcode.Interrupted {
			logging.Error(err.Error())
		}
		logging.Debugf("exit %d (%s)", code, exitcode.Name(code))
		os.Exit(code)
	}
}

func newRootCmd(out io.Writer, in io.Reader) *cobra.Command {
	cfg := config.NewDefaultConfig()
	a := &app{out: out, in: in, now: time.Now}

	rootCmd := &cobra.Command{
		Use:     "stretch",
		Short:   "Guided stretching routines with a countdown timer and activity log",
		Long:    "stretch plays stretching routines with timed holds and rest breaks, and keeps a log of the days you stretched.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}

			finalCfg, err := config.LoadWithPrecedence(config.GlobalPath(), cfg.ConfigFile, cli.BuildOverrides(cmd, cfg))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logging.SetVerbose(finalCfg.Verbose)

			return a.open(finalCfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	rootCmd.AddCommand(
		newStretchesCmd(a),
		newRoutinesCmd(a),
		newRunCmd(a, cfg),
		newLogCmd(a),
	)
	return rootCmd
}

// exitCodeFor maps a command error to the process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, context.Canceled), errors.Is(err, player.ErrStopped):
		return exitcode.Interrupted
	case errors.Is(err, routine.ErrNotFound),
		errors.Is(err, player.ErrRoutineNotFound),
		errors.Is(err, activity.ErrNotFound),
		errors.Is(err, routine.ErrUnknownStretch),
		errors.Is(err, errStretchNotFound):
		return exitcode.NotFound
	default:
		return exitcode.Error
	}
}
