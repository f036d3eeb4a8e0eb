package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/kaizen-backend/internal/config"
	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/notification"
)

var tracer = otel.Tracer("github.com/heartmarshall/kaizen-backend/internal/service/review")

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ideaRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	UpdateReview(ctx context.Context, id uuid.UUID, rv domain.IdeaReview) (*domain.Idea, error)
}

type ledger interface {
	IncrementCredits(ctx context.Context, employeeNumber string, amount int) (int, error)
}

type notifier interface {
	Notify(ctx context.Context, input notification.NotifyInput) (*domain.Notification, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the review workflow engine. It owns no state of its own and
// coordinates the idea store, the credit ledger, the notification dispatcher
// and the audit trail inside one transaction per transition.
type Service struct {
	log         *slog.Logger
	ideas       ideaRepo
	ledger      ledger
	notifier    notifier
	audit       auditRepo
	tx          txManager
	transitions TransitionRule
	rewards     RewardPolicy
	timeout     time.Duration
	now         func() time.Time
}

// NewService creates a new review workflow engine.
func NewService(
	logger *slog.Logger,
	ideas ideaRepo,
	ledger ledger,
	notifier notifier,
	audit auditRepo,
	tx txManager,
	cfg config.WorkflowConfig,
	timeout time.Duration,
) *Service {
	transitions := PermissiveTransitions
	if cfg.StrictTransitions {
		transitions = StrictTransitions
	}

	return &Service{
		log:         logger.With("service", "review"),
		ideas:       ideas,
		ledger:      ledger,
		notifier:    notifier,
		audit:       audit,
		tx:          tx,
		transitions: transitions,
		rewards: RewardPolicy{
			ApprovedPoints:    cfg.ApprovedPoints,
			ImplementedPoints: cfg.ImplementedPoints,
			GuardRepeats:      cfg.GuardRepeatedRewards,
		},
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
