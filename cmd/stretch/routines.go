package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/stretch/internal/banner"
	"github.com/CodexForgeBR/stretch/internal/logging"
	"github.com/CodexForgeBR/stretch/internal/routine"
)

func newRoutinesCmd(a *app) *cobra.Command {
	list := func(cmd *cobra.Command, args []string) error {
		banner.PrintRoutines(a.out, a.routines.List(), a.stretches)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "routines",
		Short: "Manage saved routines",
		Args:  cobra.NoArgs,
		RunE:  list,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved routines",
			Args:  cobra.NoArgs,
			RunE:  list,
		},
		&cobra.Command{
			Use:   "show <routine-id>",
			Short: "Show the stretches of a routine",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, ok := a.routines.RoutineByID(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", routine.ErrNotFound, args[0])
				}
				banner.PrintRoutineDetail(a.out, r, a.stretches)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name> <stretch-id>[:seconds]...",
			Short: "Create a routine",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := routine.ParseItems(a.stretches, args[1:], a.cfg.DefaultItemSeconds)
				if err != nil {
					return err
				}
				r, err := a.routines.Add(args[0], items)
				if err != nil {
					return err
				}
				if err := a.saveRoutines(); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Created routine %q (%s)\n", r.Name, r.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "update <routine-id> <name> <stretch-id>[:seconds]...",
			Short: "Replace the name and stretches of a routine",
			Args:  cobra.MinimumNArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				items, err := routine.ParseItems(a.stretches, args[2:], a.cfg.DefaultItemSeconds)
				if err != nil {
					return err
				}
				r, err := a.routines.Update(args[0], args[1], items)
				if err != nil {
					return err
				}
				if err := a.saveRoutines(); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated routine %q (%s)\n", r.Name, r.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <routine-id>",
			Short: "Delete a routine; its log entries are kept",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.routines.Delete(args[0]); err != nil {
					return err
				}
				if err := a.saveRoutines(); err != nil {
					return err
				}
				logging.Success("Deleted routine " + args[0])
				return nil
			},
		},
	)
	return cmd
}
