package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/query"
	"github.com/heartmarshall/kaizen-backend/internal/service/review"
)

func newIdeasCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Browse and review ideas",
	}
	cmd.AddCommand(newIdeasListCommand(opts))
	cmd.AddCommand(newIdeasGetCommand(opts))
	cmd.AddCommand(newIdeasHistoryCommand(opts))
	cmd.AddCommand(newIdeasReviewCommand(opts))
	return cmd
}

func newIdeasListCommand(opts *RootOptions) *cobra.Command {
	var in query.ListIdeasInput

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active ideas with filters and paging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := backend.Query.ListIdeas(ctx, in)
			if err != nil {
				return err
			}

			return opts.printer(cmd).emit(res, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tTITLE\tDEPARTMENT\tSTATUS\tPRIORITY\tSUBMITTER")
				for _, idea := range res.Ideas {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
						idea.ID, idea.Title, idea.Department, idea.Status, idea.Priority, idea.SubmittedByEmployeeNumber)
				}
				fmt.Fprintf(tw, "\npage %d of %d, %d ideas\n", res.CurrentPage, res.TotalPages, res.Total)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&in.Page, "page", 1, "page number")
	f.IntVar(&in.Limit, "limit", domain.DefaultPageSize, "page size")
	f.StringVar(&in.Status, "status", "all", "filter by status")
	f.StringVar(&in.Department, "department", "all", "filter by department")
	f.StringVar(&in.Priority, "priority", "all", "filter by priority")
	f.StringVar(&in.Search, "search", "", "search title, problem, submitter name and employee number")
	f.StringVar(&in.SortBy, "sort-by", "createdAt", "sort field")
	f.StringVar(&in.SortOrder, "sort-order", "desc", "sort order (asc|desc)")

	return cmd
}

func newIdeasGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <idea-id>",
		Short: "Show one idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("idea-id", args[0])
			if err != nil {
				return err
			}

			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			idea, err := backend.Query.GetIdea(ctx, id)
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(idea, func(tw *tabwriter.Writer) { writeIdea(tw, idea) })
		},
	}
}

func newIdeasHistoryCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <idea-id>",
		Short: "Show the audit trail of an idea, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("idea-id", args[0])
			if err != nil {
				return err
			}

			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			records, err := backend.Query.ReviewHistory(ctx, query.HistoryInput{IdeaID: id, Limit: limit})
			if err != nil {
				return err
			}

			return opts.printer(cmd).emit(records, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "WHEN\tACTION\tBY\tCHANGES")
				for _, r := range records {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n",
						r.CreatedAt.Format("2006-01-02 15:04"), r.Action, r.UserID, r.Changes)
				}
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records (default 50)")
	return cmd
}

func newIdeasReviewCommand(opts *RootOptions) *cobra.Command {
	var (
		status   string
		comments string
		priority string
	)

	cmd := &cobra.Command{
		Use:   "review <idea-id>",
		Short: "Move an idea to a new status, awarding credits where due",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("idea-id", args[0])
			if err != nil {
				return err
			}

			in := review.UpdateStatusInput{IdeaID: id, Status: domain.IdeaStatus(status)}
			if cmd.Flags().Changed("comments") {
				in.ReviewComments = &comments
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				in.Priority = &p
			}

			ctx, backend, closeFn, err := opts.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			idea, err := backend.Review.UpdateStatus(ctx, in)
			if err != nil {
				return err
			}
			return opts.printer(cmd).emit(idea, func(tw *tabwriter.Writer) { writeIdea(tw, idea) })
		},
	}

	f := cmd.Flags()
	f.StringVar(&status, "status", "", "new status (under_review|ongoing|approved|implemented|rejected)")
	f.StringVar(&comments, "comments", "", "review comments")
	f.StringVar(&priority, "priority", "", "new priority (low|medium|high|urgent)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func writeIdea(tw *tabwriter.Writer, idea *domain.Idea) {
	fmt.Fprintf(tw, "ID:\t%s\n", idea.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", idea.Title)
	fmt.Fprintf(tw, "Department:\t%s\n", idea.Department)
	fmt.Fprintf(tw, "Status:\t%s\n", idea.Status)
	fmt.Fprintf(tw, "Priority:\t%s\n", idea.Priority)
	fmt.Fprintf(tw, "Submitted by:\t%s (%s)\n", idea.SubmittedByName, idea.SubmittedByEmployeeNumber)
	fmt.Fprintf(tw, "Estimated savings:\t%s\n", idea.EstimatedSavings.StringFixed(2))
	fmt.Fprintf(tw, "Review comments:\t%s\n", deref(idea.ReviewComments))
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "must be a UUID")
	}
	return id, nil
}
