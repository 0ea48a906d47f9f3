package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/stretch/internal/banner"
	"github.com/CodexForgeBR/stretch/internal/catalog"
)

func newStretchesCmd(a *app) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "stretches",
		Short: "List the stretch library grouped by body area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tag == "" {
				banner.PrintStretchGroups(a.out, a.stretches.Grouped())
				return nil
			}
			matches := a.stretches.WithTag(tag)
			if len(matches) == 0 {
				fmt.Fprintf(a.out, "No stretches tagged %q.\n", tag)
				return nil
			}
			banner.PrintStretchGroups(a.out, []catalog.Group{{Tag: tag, Stretches: matches}})
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "Only list stretches with this tag")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <stretch-id>",
		Short: "Show one stretch with its instructions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := a.stretches.StretchByID(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errStretchNotFound, args[0])
			}
			banner.PrintStretchDetail(a.out, s)
			return nil
		},
	})
	return cmd
}
