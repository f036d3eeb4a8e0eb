package query

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// trendWindow is the trailing window of the monthly trend.
const trendWindow = 365 * 24 * time.Hour

// DashboardStats aggregates active ideas. The four aggregates are read
// concurrently and need not come from one snapshot.
func (s *Service) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	ctx, span := tracer.Start(ctx, "query.DashboardStats")
	defer span.End()

	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		total    int
		byStatus []domain.StatusCount
		byDept   []domain.DepartmentCount
		monthly  []domain.MonthlyCount
	)
	since := s.now().Add(-trendWindow)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.ideas.CountActive(gctx)
		if err != nil {
			return fmt.Errorf("count ideas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		byStatus, err = s.ideas.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("status distribution: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		byDept, err = s.ideas.CountByDepartment(gctx)
		if err != nil {
			return fmt.Errorf("department distribution: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		monthly, err = s.ideas.MonthlyCounts(gctx, since)
		if err != nil {
			return fmt.Errorf("monthly trend: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		err = domain.WrapTimeout(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "dashboard stats")
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	stats := &domain.DashboardStats{
		TotalIdeas:         total,
		StatusDistribution: nonNil(byStatus),
		DepartmentStats:    nonNil(byDept),
		MonthlyTrends:      nonNil(monthly),
	}
	stats.UnderReview = stats.CountFor(domain.IdeaStatusUnderReview)
	stats.Approved = stats.CountFor(domain.IdeaStatusApproved)
	stats.Implemented = stats.CountFor(domain.IdeaStatusImplemented)

	return stats, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
