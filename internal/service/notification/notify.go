package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// Notify writes one notification record. It joins the caller's transaction
// when one is in ctx, so dispatches commit or roll back with the triggering
// mutation. Notify never batches or deduplicates.
func (s *Service) Notify(ctx context.Context, input NotifyInput) (*domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	n := &domain.Notification{
		ID:            uuid.New(),
		Type:          input.Type,
		Title:         input.Title,
		Message:       input.Message,
		RecipientRole: input.Target.Role,
		RelatedID:     input.RelatedID,
		RelatedModel:  input.RelatedModel,
		Priority:      input.Priority,
		ActionURL:     input.ActionURL,
		IsActive:      true,
		CreatedAt:     s.now(),
	}
	if n.RecipientRole == "" {
		n.RecipientRole = domain.RecipientRoleAll
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityMedium
	}
	if input.Target.EmployeeNumber != "" {
		num := input.Target.EmployeeNumber
		n.RecipientEmployeeNumber = &num
	}
	n.UpdatedAt = n.CreatedAt

	created, err := s.notifications.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.log.DebugContext(ctx, "notification dispatched",
		slog.String("notification_id", created.ID.String()),
		slog.String("type", string(created.Type)),
		slog.String("recipient_role", string(created.RecipientRole)),
	)

	return created, nil
}
