package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newReseedCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reseed",
		Short: "Reset the roster to the default departments and no employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.client.Reseed(cmd.Context()); err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), map[string]bool{"reseeded": true}, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, "roster reseeded")
			})
		},
	}
}
