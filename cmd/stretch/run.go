package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/stretch/internal/activity"
	"github.com/CodexForgeBR/stretch/internal/banner"
	"github.com/CodexForgeBR/stretch/internal/cli"
	"github.com/CodexForgeBR/stretch/internal/config"
	"github.com/CodexForgeBR/stretch/internal/cue"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/player"
	"github.com/CodexForgeBR/stretch/internal/routine"
	"github.com/CodexForgeBR/stretch/internal/schedule"
	sighandler "github.com/CodexForgeBR/stretch/internal/signal"
	"github.com/CodexForgeBR/stretch/internal/timer"
)

func newRunCmd(a *app, cfg *config.Config) *cobra.Command {
	var opts cli.RunOptions

	cmd := &cobra.Command{
		Use:   "run <routine-id>",
		Short: "Play a routine with a countdown and log it when it completes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoutine(cmd.Context(), args[0], opts)
		},
	}
	cli.BindRunFlags(cmd, cfg, &opts)
	return cmd
}

func (a *app) runRoutine(parent context.Context, routineID string, opts cli.RunOptions) error {
	if _, ok := a.routines.RoutineByID(routineID); !ok {
		return fmt.Errorf("%w: %s", routine.ErrNotFound, routineID)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	stop := sighandler.SetupSignalHandler(ctx, cancel, func(sig os.Signal) {
		logging.Warn("Interrupted by " + sig.String() + ", stopping routine")
	})
	defer stop()

	if opts.StartAt != "" {
		target, err := schedule.ParseStart(opts.StartAt, a.now())
		if err != nil {
			return err
		}
		logging.Header("Scheduled start at " + target.Format("2006-01-02 15:04"))
		err = schedule.WaitUntil(ctx, target, func(remaining time.Duration) {
			logging.Infof("Starting in %s", logging.FormatDuration(int(remaining.Seconds())))
		})
		if err != nil {
			logging.Warn("Start cancelled")
			return err
		}
	}

	cuer, wait := a.cuer()
	defer wait()

	engine := timer.New(timer.Options{
		Stretches:    a.stretches,
		Routines:     a.routines,
		Cuer:         cuer,
		BreakSeconds: a.cfg.BreakSeconds,
	})

	var (
		logged  activity.Entry
		saveErr error
	)
	engine.OnCompleted(func(c timer.Completion) {
		e, err := a.log.RecordCompletion(c.Routine, c.TotalMinutes)
		if err != nil {
			saveErr = err
			return
		}
		logged = e
		saveErr = a.saveLog()
	})

	p := player.New(player.Options{
		Engine:    engine,
		Stretches: a.stretches,
		Out:       a.out,
		Interval:  time.Duration(a.cfg.TickMillis) * time.Millisecond,
	})
	commands := player.ReadCommands(ctx, a.in, func(err error) {
		logging.Warn(err.Error())
	})

	res, err := p.Run(ctx, routineID, commands)
	if err != nil {
		return err
	}
	if saveErr != nil {
		return fmt.Errorf("log completed routine: %w", saveErr)
	}
	if res.Completion == nil {
		logging.Warn("Routine has no stretches, nothing logged")
		return nil
	}

	banner.PrintCompletion(a.out, *res.Completion, logged.Date)
	return nil
}

// cuer builds the countdown cue emitter. The returned func waits for cue
// commands still playing.
func (a *app) cuer() (timer.Cuer, func()) {
	if !a.cfg.CueEnabled {
		return cue.Nop{}, func() {}
	}
	emitters := cue.Multi{cue.NewBell(a.out)}
	command := cue.ParseCommand(a.cfg.CueCommand)
	if command != nil {
		logging.Debugf("cue command: %s", a.cfg.CueCommand)
		emitters = append(emitters, command)
	}
	return emitters, command.Wait
}
