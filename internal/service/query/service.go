package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

var tracer = otel.Tracer("github.com/heartmarshall/kaizen-backend/internal/service/query")

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ideaRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, f domain.IdeaFilter) ([]domain.Idea, int, error)
	Departments(ctx context.Context) ([]string, error)
	CountActive(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
	CountByDepartment(ctx context.Context) ([]domain.DepartmentCount, error)
	MonthlyCounts(ctx context.Context, since time.Time) ([]domain.MonthlyCount, error)
}

type auditRepo interface {
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service serves read-only listings and dashboard aggregates over active
// ideas. It takes no locks and may run concurrently with the review engine.
type Service struct {
	log     *slog.Logger
	ideas   ideaRepo
	audit   auditRepo
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a new query service.
func NewService(logger *slog.Logger, ideas ideaRepo, audit auditRepo, timeout time.Duration) *Service {
	return &Service{
		log:     logger.With("service", "query"),
		ideas:   ideas,
		audit:   audit,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
