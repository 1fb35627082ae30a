package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/pixell-roster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pixell-roster/internal/app/fanout"
	"github.com/jsamuelsen11/pixell-roster/internal/domain"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/department"
	"github.com/jsamuelsen11/pixell-roster/internal/domain/employee"
)

const defaultImportConcurrency = 4

func newEmployeesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"emp"},
		Short:   "List, add and remove employees",
	}

	cmd.AddCommand(
		newEmployeesListCmd(opts),
		newEmployeesCreateCmd(opts),
		newEmployeesDeleteCmd(opts),
		newEmployeesImportCmd(opts),
	)
	return cmd
}

func newEmployeesListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			depts, err := opts.client.ListDepartments(ctx)
			if err != nil {
				return err
			}
			emps, err := opts.client.ListEmployees(ctx)
			if err != nil {
				return err
			}

			return opts.render(cmd.OutOrStdout(), dto.ToEmployeeListResponse(emps, depts), func(w io.Writer) {
				if len(emps) == 0 {
					_, _ = fmt.Fprintln(w, "no employees")
					return
				}
				_, _ = fmt.Fprintln(w, "ID\tNAME\tDEPARTMENT")
				for _, e := range emps {
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.FullName(), department.NameOf(depts, e.DepartmentID))
				}
			})
		},
	}
}

func newEmployeesCreateCmd(opts *globalOptions) *cobra.Command {
	var draft employee.Draft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add one employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := opts.client.CreateEmployee(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), dto.ToEmployeeResponse(created, nil), func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "added %s\t%s\n", created.FullName(), created.ID)
			})
		},
	}

	cmd.Flags().StringVar(&draft.FirstName, "first", "", "first name (at least 3 characters)")
	cmd.Flags().StringVar(&draft.LastName, "last", "", "last name")
	cmd.Flags().StringVar(&draft.DepartmentID, "department", department.PersonalBankingID, "department id")
	return cmd
}

func newEmployeesDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if err := opts.client.DeleteEmployee(cmd.Context(), id); err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), map[string]string{"deleted": id}, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "deleted %s\n", id)
			})
		},
	}
}

// importResult is one line of `employees import` output.
type importResult struct {
	Index    int                   `json:"index"`
	Employee *dto.EmployeeResponse `json:"employee,omitempty"`
	Error    string                `json:"error,omitempty"`
	Fields   map[string][]string   `json:"fields,omitempty"`
}

func newEmployeesImportCmd(opts *globalOptions) *cobra.Command {
	concurrency := defaultImportConcurrency

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Add every employee listed in a YAML file",
		Long: `Reads a YAML list of employees and creates them concurrently:

  - firstName: Amanda
    lastName: Singh
    departmentId: d2

Each entry is validated by the server on its own; one rejected entry does
not stop the others. The command exits non-zero if any entry failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if concurrency < 1 {
				return fmt.Errorf("--concurrency must be >= 1, got %d", concurrency)
			}

			reqs, err := readImportFile(args[0])
			if err != nil {
				return err
			}

			results := fanout.Run(cmd.Context(), concurrency, reqs,
				func(ctx context.Context, r dto.CreateEmployeeRequest) (*employee.Employee, error) {
					return opts.client.CreateEmployee(ctx, r.Draft())
				})

			lines := toImportResults(results)
			if err := opts.render(cmd.OutOrStdout(), lines, func(w io.Writer) {
				for _, l := range lines {
					if l.Employee != nil {
						_, _ = fmt.Fprintf(w, "%d\tadded\t%s %s\t%s\n", l.Index, l.Employee.FirstName, l.Employee.LastName, l.Employee.ID)
						continue
					}
					_, _ = fmt.Fprintf(w, "%d\tfailed\t%s\n", l.Index, l.Error)
				}
			}); err != nil {
				return err
			}

			if err := fanout.Join(results); err != nil {
				failed := len(results) - len(fanout.Succeeded(results))
				return fmt.Errorf("%d of %d employees not imported: %w", failed, len(results), err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", defaultImportConcurrency, "maximum concurrent create requests")
	return cmd
}

func readImportFile(path string) ([]dto.CreateEmployeeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var reqs []dto.CreateEmployeeRequest
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%s lists no employees", path)
	}
	return reqs, nil
}

func toImportResults(results []fanout.Result[*employee.Employee]) []importResult {
	out := make([]importResult, len(results))
	for i, r := range results {
		out[i].Index = i
		if r.Err == nil {
			resp := dto.ToEmployeeResponse(r.Value, nil)
			out[i].Employee = &resp
			continue
		}
		out[i].Error = r.Err.Error()
		var verr *domain.ValidationError
		if errors.As(r.Err, &verr) {
			out[i].Fields = verr.Fields
		}
	}
	return out
}
