package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/config"
	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// notificationRepo defines the notification store needed by the dispatcher.
type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, int, error)
	CountUnread(ctx context.Context, scope domain.RecipientScope) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, scope domain.RecipientScope) (int, error)
}

// Service dispatches notifications and serves them back to recipients.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	cfg           config.NotificationsConfig
	timeout       time.Duration
	now           func() time.Time
}

// NewService creates a new notification service. timeout bounds every
// store call made on behalf of a caller.
func NewService(
	logger *slog.Logger,
	notifications notificationRepo,
	cfg config.NotificationsConfig,
	timeout time.Duration,
) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		cfg:           cfg,
		timeout:       timeout,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) pageSize() int {
	if s.cfg.DefaultPageSize > 0 {
		return s.cfg.DefaultPageSize
	}
	return domain.DefaultPageSize
}
