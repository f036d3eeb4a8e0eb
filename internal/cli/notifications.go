package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/notification"
)

func newNotificationsCommand(opts *RootOptions) *cobra.Command {
	var recipient recipientFlags

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "Read and acknowledge notifications",
	}
	cmd.PersistentFlags().StringVar(&recipient.role, "for-role", "", "recipient role (defaults to the caller role)")
	cmd.PersistentFlags().StringVar(&recipient.employeeNumber, "for-employee", "", "recipient employee number (defaults to the caller)")

	cmd.AddCommand(newNotificationsListCommand(opts, &recipient))
	cmd.AddCommand(newNotificationsUnreadCommand(opts, &recipient))
	cmd.AddCommand(newNotificationsReadCommand(opts))
	cmd.AddCommand(newNotificationsReadAllCommand(opts, &recipient))
	return cmd
}

type recipientFlags struct {
	role           string
	employeeNumber string
}

func (r *recipientFlags) input() notification.RecipientInput {
	return notification.RecipientInput{
		Role:           domain.RecipientRole(r.role),
		EmployeeNumber: r.employeeNumber,
	}
}

func newNotificationsListCommand(opts *RootOptions, recipient *recipientFlags) *cobra.Command {
	var (
		page, limit int
		unread      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := notification.ListInput{RecipientInput: recipient.input(), Page: page, Limit: limit}
			if unread {
				isRead := false
				in.IsRead = &isRead
			}

			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := backend.Notifications.List(ctx, in)
			if err != nil {
				return err
			}

			return opts.printer(cmd).emit(res, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tREAD\tTYPE\tTITLE\tMESSAGE")
				for _, n := range res.Notifications {
					fmt.Fprintf(tw, "%s\t%t\t%s\t%s\t%s\n", n.ID, n.IsRead, n.Type, n.Title, n.Message)
				}
				fmt.Fprintf(tw, "\npage %d of %d, %d unread\n", res.CurrentPage, res.TotalPages, res.UnreadCount)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&page, "page", 1, "page number")
	f.IntVar(&limit, "limit", 20, "page size")
	f.BoolVar(&unread, "unread", false, "only unread notifications")

	return cmd
}

func newNotificationsUnreadCommand(opts *RootOptions, recipient *recipientFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "unread-count",
		Short: "Count unread notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := backend.Notifications.UnreadCount(ctx, recipient.input())
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(map[string]int{"unreadCount": n}, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "%d\n", n)
			})
		},
	}
}

func newNotificationsReadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("notification-id", args[0])
			if err != nil {
				return err
			}

			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := backend.Notifications.MarkRead(ctx, id)
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(n, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Marked %s as read.\n", n.ID)
			})
		},
	}
}

func newNotificationsReadAllCommand(opts *RootOptions, recipient *recipientFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every unread notification of the recipient as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := backend.Notifications.MarkAllRead(ctx, recipient.input())
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(map[string]int{"modifiedCount": n}, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "Marked %d notifications as read.\n", n)
			})
		},
	}
}
