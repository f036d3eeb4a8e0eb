// Package cli implements kaizenctl, the operator command line for the idea
// review workflow. Every command runs the same services as the server under
// the identity given by the global flags.
package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/employee"
	"github.com/heartmarshall/kaizen-backend/internal/service/notification"
	"github.com/heartmarshall/kaizen-backend/internal/service/query"
	"github.com/heartmarshall/kaizen-backend/internal/service/review"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reviewService interface {
	UpdateStatus(ctx context.Context, input review.UpdateStatusInput) (*domain.Idea, error)
}

type queryService interface {
	ListIdeas(ctx context.Context, input query.ListIdeasInput) (*query.IdeaList, error)
	GetIdea(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	ReviewHistory(ctx context.Context, input query.HistoryInput) ([]domain.AuditRecord, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type notificationService interface {
	List(ctx context.Context, input notification.ListInput) (*notification.ListResult, error)
	UnreadCount(ctx context.Context, input notification.RecipientInput) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, input notification.RecipientInput) (int, error)
}

type employeeService interface {
	List(ctx context.Context, input employee.ListInput) (*employee.ListResult, error)
	GetByNumber(ctx context.Context, number string) (*domain.Employee, error)
	AdjustCredits(ctx context.Context, input employee.AdjustCreditsInput) (*domain.Employee, error)
	SetRole(ctx context.Context, input employee.SetRoleInput) (*domain.Employee, error)
	Create(ctx context.Context, input employee.CreateInput) (*domain.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Backend is the service graph a command runs against.
type Backend struct {
	Review        reviewService
	Query         queryService
	Notifications notificationService
	Employees     employeeService
}

// Opener builds a Backend from the configuration at configPath (empty means
// the default lookup). The returned close func releases its resources.
type Opener func(ctx context.Context, configPath string) (*Backend, func(), error)

// RootOptions holds the global flags shared by every command.
type RootOptions struct {
	Format         string
	ConfigPath     string
	CallerID       string
	EmployeeNumber string
	Role           string

	open Opener
}

var validFormats = []string{formatText, formatJSON}

// NewRootCommand creates the kaizenctl command tree. open is invoked lazily
// by commands that need the services.
func NewRootCommand(open Opener) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "kaizenctl",
		Short: "Operate the idea review and reward workflow",
		Long: `kaizenctl reviews ideas, inspects the dashboard, and manages notifications
and employee credits against the workflow database.

The caller identity is taken from --caller-id, --employee-number and --role,
or from KAIZEN_CALLER_ID, KAIZEN_EMPLOYEE_NUMBER and KAIZEN_ROLE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Format, "format", formatText, "output format (text|json)")
	flags.StringVar(&opts.ConfigPath, "config", "", "path to the YAML config (default $KAIZEN_CONFIG or ./kaizen.yaml)")
	flags.StringVar(&opts.CallerID, "caller-id", os.Getenv("KAIZEN_CALLER_ID"), "caller UUID")
	flags.StringVar(&opts.EmployeeNumber, "employee-number", os.Getenv("KAIZEN_EMPLOYEE_NUMBER"), "caller employee number")
	flags.StringVar(&opts.Role, "role", os.Getenv("KAIZEN_ROLE"), "caller role (employee|reviewer|admin)")

	cmd.AddCommand(newIdeasCommand(opts))
	cmd.AddCommand(newStatsCommand(opts))
	cmd.AddCommand(newNotificationsCommand(opts))
	cmd.AddCommand(newEmployeesCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// session opens the backend and returns a context carrying the caller
// identity. An absent identity is not an error here; the services reject
// the call themselves.
func (o *RootOptions) session(cmd *cobra.Command) (context.Context, *Backend, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if o.CallerID != "" {
		callerID, err := uuid.Parse(o.CallerID)
		if err != nil {
			return nil, nil, nil, domain.NewValidationError("caller-id", "must be a UUID")
		}
		ctx = ctxutil.WithIdentity(ctx, ctxutil.Identity{
			CallerID:       callerID,
			EmployeeNumber: o.EmployeeNumber,
			Role:           o.Role,
		})
	}

	backend, closeFn, err := o.open(ctx, o.ConfigPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open backend: %w", err)
	}
	return ctx, backend, closeFn, nil
}

func (o *RootOptions) printer(cmd *cobra.Command) *printer {
	return &printer{format: o.Format, w: cmd.OutOrStdout()}
}
