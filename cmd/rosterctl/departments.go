package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
)

func newDepartmentsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "departments",
		Aliases: []string{"depts"},
		Short:   "Inspect departments",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List departments in seed order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			depts, err := opts.client.ListDepartments(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), dto.ToDepartmentListResponse(depts), func(w io.Writer) {
				_, _ = fmt.Fprintln(w, "ID\tNAME")
				for _, d := range depts {
					_, _ = fmt.Fprintf(w, "%s\t%s\n", d.ID, d.Name)
				}
			})
		},
	})

	return cmd
}
