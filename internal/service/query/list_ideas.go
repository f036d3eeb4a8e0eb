package query

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// ListIdeas returns one page of active ideas matching the filter. Any store
// failure fails the whole call; no partial page is returned.
func (s *Service) ListIdeas(ctx context.Context, input ListIdeasInput) (*IdeaList, error) {
	ctx, span := tracer.Start(ctx, "query.ListIdeas")
	defer span.End()

	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := domain.PageRequest{Page: input.Page, Limit: input.Limit}.Normalize(domain.DefaultPageSize)
	filter := input.filter(page)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ideas, total, err := s.ideas.List(ctx, filter)
	if err != nil {
		err = domain.WrapTimeout(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list ideas")
		return nil, fmt.Errorf("list ideas: %w", err)
	}

	departments, err := s.ideas.Departments(ctx)
	if err != nil {
		err = domain.WrapTimeout(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list departments")
		return nil, fmt.Errorf("list departments: %w", err)
	}

	if ideas == nil {
		ideas = []domain.Idea{}
	}
	if departments == nil {
		departments = []string{}
	}

	span.SetAttributes(attribute.Int("ideas.total", total), attribute.Int("page", page.Page))

	return &IdeaList{
		Ideas:       ideas,
		Total:       total,
		Departments: departments,
		Statuses:    domain.IdeaStatuses(),
		Priorities:  domain.Priorities(),
		TotalPages:  domain.TotalPages(total, page.Limit),
		CurrentPage: page.Page,
	}, nil
}
