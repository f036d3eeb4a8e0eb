package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// MarkRead flips the read flag of one notification.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.notifications.MarkRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", domain.WrapTimeout(err))
	}
	return n, nil
}

// MarkAllRead flips every unread, active notification visible to the
// recipient and returns how many changed. Zero is a valid result.
func (s *Service) MarkAllRead(ctx context.Context, input RecipientInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	scope, err := s.resolveScope(ctx, input)
	if err != nil {
		return 0, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	count, err := s.notifications.MarkAllRead(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", domain.WrapTimeout(err))
	}

	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("role", string(scope.Role)),
		slog.Int("count", count),
	)

	return count, nil
}
