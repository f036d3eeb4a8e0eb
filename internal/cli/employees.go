package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/employee"
)

func newEmployeesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "Inspect the directory and manage credits and roles",
	}
	cmd.AddCommand(newEmployeesListCommand(opts))
	cmd.AddCommand(newEmployeesCreditsCommand(opts))
	cmd.AddCommand(newEmployeesRoleCommand(opts))
	cmd.AddCommand(newEmployeesCreateCommand(opts))
	cmd.AddCommand(newEmployeesDeleteCommand(opts))
	return cmd
}

func newEmployeesListCommand(opts *RootOptions) *cobra.Command {
	var in employee.ListInput

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees, highest credit balance first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := backend.Employees.List(ctx, in)
			if err != nil {
				return err
			}

			return opts.printer(cmd).emit(res, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "NUMBER\tNAME\tDEPARTMENT\tROLE\tCREDITS")
				for _, e := range res.Employees {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", e.EmployeeNumber, e.Name, e.Department, e.Role, e.CreditPoints)
				}
				fmt.Fprintf(tw, "\npage %d of %d, %d employees\n", res.CurrentPage, res.TotalPages, res.Total)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&in.Page, "page", 1, "page number")
	f.IntVar(&in.Limit, "limit", 50, "page size")
	f.StringVar(&in.Department, "department", "all", "filter by department")
	f.StringVar(&in.Search, "search", "", "search name, number and email")
	f.StringVar(&in.SortBy, "sort-by", "creditPoints", "sort field")
	f.StringVar(&in.SortOrder, "sort-order", "desc", "sort order (asc|desc)")

	return cmd
}

func newEmployeesCreditsCommand(opts *RootOptions) *cobra.Command {
	var (
		points int
		reason string
	)

	cmd := &cobra.Command{
		Use:   "credits <employee-number>",
		Short: "Set an employee's credit balance (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			target, err := backend.Employees.GetByNumber(ctx, args[0])
			if err != nil {
				return err
			}

			in := employee.AdjustCreditsInput{EmployeeID: target.ID, CreditPoints: points}
			if cmd.Flags().Changed("reason") {
				in.Reason = &reason
			}

			updated, err := backend.Employees.AdjustCredits(ctx, in)
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(updated, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "%s now has %d credit points.\n", updated.EmployeeNumber, updated.CreditPoints)
			})
		},
	}

	cmd.Flags().IntVar(&points, "set", 0, "new credit balance")
	cmd.Flags().StringVar(&reason, "reason", "", "reason shown to the employee")
	_ = cmd.MarkFlagRequired("set")

	return cmd
}

func newEmployeesRoleCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <employee-number> <role>",
		Short: "Change an employee's role (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			target, err := backend.Employees.GetByNumber(ctx, args[0])
			if err != nil {
				return err
			}

			updated, err := backend.Employees.SetRole(ctx, employee.SetRoleInput{
				EmployeeID: target.ID,
				Role:       domain.Role(args[1]),
			})
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(updated, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "%s is now %s.\n", updated.EmployeeNumber, updated.Role)
			})
		},
	}
}

func newEmployeesCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		in     employee.CreateInput
		role   string
		phone  string
		joined string
	)

	cmd := &cobra.Command{
		Use:   "create <employee-number>",
		Short: "Add an employee to the directory (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.EmployeeNumber = args[0]
			in.Role = domain.Role(role)
			if cmd.Flags().Changed("phone") {
				in.PhoneNumber = &phone
			}
			if joined != "" {
				t, err := time.Parse(time.DateOnly, joined)
				if err != nil {
					return domain.NewValidationError("joiningDate", "must be YYYY-MM-DD")
				}
				in.JoiningDate = t
			}

			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			created, err := backend.Employees.Create(ctx, in)
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(created, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Created %s (%s) in %s as %s.\n", created.EmployeeNumber, created.Name, created.Department, created.Role)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.StringVar(&in.Email, "email", "", "email address")
	f.StringVar(&in.Department, "department", "", "department")
	f.StringVar(&role, "role", "", "role (employee|reviewer|admin, default employee)")
	f.IntVar(&in.CreditPoints, "credits", 0, "opening credit balance")
	f.StringVar(&phone, "phone", "", "phone number")
	f.StringVar(&joined, "joined", "", "joining date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("department")

	return cmd
}

func newEmployeesDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <employee-number>",
		Short: "Remove an employee from the directory (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			target, err := backend.Employees.GetByNumber(ctx, args[0])
			if err != nil {
				return err
			}
			if err := backend.Employees.Delete(ctx, target.ID); err != nil {
				return err
			}

			res := struct {
				EmployeeNumber string `json:"employeeNumber"`
				Deleted        bool   `json:"deleted"`
			}{target.EmployeeNumber, true}
			return opts.printer(cmd).emit(res, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Removed %s.\n", target.EmployeeNumber)
			})
		},
	}
}
