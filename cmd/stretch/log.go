package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/stretch/internal/activity"
	"github.com/CodexForgeBR/stretch/internal/banner"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/routine"
)

func newLogCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the activity timeline of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := a.today()
			if date != "" {
				t, err := activity.ParseDate(date)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
				day = activity.DateKey(t)
			}
			banner.PrintTimeline(a.out, day, a.log.Day(day))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Day to show as YYYY-MM-DD (default today)")

	cmd.AddCommand(
		newLogAddCmd(a),
		newLogEditCmd(a),
		&cobra.Command{
			Use:   "delete <entry-id>",
			Short: "Delete a log entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, ok := a.log.EntryByID(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", activity.ErrNotFound, args[0])
				}
				if err := a.log.Delete(e.ID); err != nil {
					return err
				}
				if err := a.saveLog(); err != nil {
					return err
				}
				logging.Success(fmt.Sprintf("Deleted %s on %s", activity.DisplayName(e), e.Date))
				return nil
			},
		},
		newLogCalendarCmd(a),
		&cobra.Command{
			Use:   "strip",
			Short: "Show the last 31 days, marking the days you stretched",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				banner.PrintStrip(a.out, a.log.Strip(a.now()), a.today())
				return nil
			},
		},
	)
	return cmd
}

func newLogAddCmd(a *app) *cobra.Command {
	var req activity.AddRequest
	var minutes int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log an activity by hand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.RoutineID != "" {
				if _, ok := a.routines.RoutineByID(req.RoutineID); !ok {
					return fmt.Errorf("%w: %s", routine.ErrNotFound, req.RoutineID)
				}
			}
			if cmd.Flags().Changed("minutes") {
				req.Minutes = &minutes
			}
			req.Manual = true

			e, err := a.log.Add(req)
			if err != nil {
				return err
			}
			if err := a.saveLog(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Logged %s on %s (%s)\n", activity.DisplayName(e), e.Date, e.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.RoutineID, "routine", "", "Routine id; fills in the name and length")
	flags.StringVar(&req.CustomName, "name", "", "Name of an activity that is not a saved routine")
	flags.IntVar(&minutes, "minutes", 0, "Length in minutes")
	flags.StringVar(&req.Description, "note", "", "Free-text note")
	flags.StringVar(&req.Date, "date", "", "Day as YYYY-MM-DD (default today)")
	return cmd
}

func newLogEditCmd(a *app) *cobra.Command {
	var name, note string
	var minutes int

	cmd := &cobra.Command{
		Use:   "edit <entry-id>",
		Short: "Change the name, length or note of a log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch activity.Patch
			flags := cmd.Flags()
			if flags.Changed("name") {
				patch.CustomName = &name
			}
			if flags.Changed("minutes") {
				patch.Minutes = &minutes
			}
			if flags.Changed("note") {
				patch.Description = &note
			}

			e, err := a.log.Update(args[0], patch)
			if err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			if err := a.saveLog(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Updated %s on %s (%s)\n", activity.DisplayName(e), e.Date, e.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "New name; empty clears it")
	flags.IntVar(&minutes, "minutes", 0, "New length in minutes; 0 clears it")
	flags.StringVar(&note, "note", "", "New note; empty clears it")
	return cmd
}

func newLogCalendarCmd(a *app) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month calendar of the days you stretched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			banner.PrintMonth(a.out, a.log.Month(a.now(), offset), a.today())
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "month-offset", 0, "Months relative to this one, e.g. -1 for last month")
	return cmd
}
