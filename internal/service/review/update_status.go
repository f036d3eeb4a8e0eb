package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/notification"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// UpdateStatus moves an idea to a new review status on behalf of an admin or
// reviewer. The status write, the submitter notifications, the credit award
// and the audit record commit together or not at all.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Idea, error) {
	ctx, span := tracer.Start(ctx, "review.UpdateStatus", trace.WithAttributes(
		attribute.String("idea.id", input.IdeaID.String()),
		attribute.String("idea.status", string(input.Status)),
	))
	defer span.End()

	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok || !domain.Role(caller.Role).CanReview() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		updated *domain.Idea
		awarded int
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.ideas.GetForUpdate(ctx, input.IdeaID)
		if err != nil {
			return fmt.Errorf("get idea: %w", err)
		}

		if err := s.transitions(current.Status, input.Status); err != nil {
			return err
		}

		updated, err = s.ideas.UpdateReview(ctx, current.ID, domain.IdeaReview{
			Status:         input.Status,
			ReviewedBy:     caller.CallerID,
			ReviewedAt:     s.now(),
			ReviewComments: input.ReviewComments,
			Priority:       input.Priority,
		})
		if err != nil {
			return fmt.Errorf("update idea review: %w", err)
		}

		changes := map[string]any{
			"status": domain.Change(current.Status, updated.Status),
		}
		if input.Priority != nil {
			changes["priority"] = domain.Change(current.Priority, updated.Priority)
		}
		if input.ReviewComments != nil {
			changes["reviewComments"] = domain.Change(current.ReviewComments, updated.ReviewComments)
		}

		if err := s.notifyStatus(ctx, updated); err != nil {
			return err
		}

		awarded = s.rewards.Award(current.Status, updated.Status)
		if awarded > 0 {
			balance, err := s.ledger.IncrementCredits(ctx, updated.SubmittedByEmployeeNumber, awarded)
			if err != nil {
				return fmt.Errorf("award credits: submitter ledger entry %s: %w", updated.SubmittedByEmployeeNumber, err)
			}
			changes["creditPoints"] = domain.Change(balance-awarded, balance)

			if err := s.notifyCredits(ctx, updated, awarded); err != nil {
				return err
			}
		}

		ideaID := updated.ID
		if err := s.audit.Log(ctx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     caller.CallerID,
			EntityType: domain.EntityTypeIdea,
			EntityID:   &ideaID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
			CreatedAt:  s.now(),
		}); err != nil {
			return fmt.Errorf("audit idea review: %w", err)
		}

		return nil
	})
	if err != nil {
		err = domain.WrapTimeout(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(domain.KindOf(err)))
		return nil, err
	}

	span.SetAttributes(attribute.Int("credits.awarded", awarded))
	s.log.InfoContext(ctx, "idea status updated",
		slog.String("idea_id", updated.ID.String()),
		slog.String("status", string(updated.Status)),
		slog.String("reviewer_id", caller.CallerID.String()),
		slog.String("submitter", updated.SubmittedByEmployeeNumber),
		slog.Int("credits_awarded", awarded),
	)

	return updated, nil
}

func (s *Service) notifyStatus(ctx context.Context, idea *domain.Idea) error {
	ideaID := idea.ID
	model := domain.RelatedModelIdea

	_, err := s.notifier.Notify(ctx, notification.NotifyInput{
		Type:         domain.NotificationIdeaStatusUpdated,
		Title:        "Idea Status Updated",
		Message:      fmt.Sprintf("Your idea %q status has been updated to %s", idea.Title, idea.Status),
		Target:       domain.ToEmployee(idea.SubmittedByEmployeeNumber),
		RelatedID:    &ideaID,
		RelatedModel: &model,
	})
	if err != nil {
		return fmt.Errorf("notify status update: %w", err)
	}
	return nil
}

func (s *Service) notifyCredits(ctx context.Context, idea *domain.Idea, points int) error {
	ideaID := idea.ID
	model := domain.RelatedModelIdea

	_, err := s.notifier.Notify(ctx, notification.NotifyInput{
		Type:         domain.NotificationCreditPointsUpdated,
		Title:        "Credit Points Awarded",
		Message:      fmt.Sprintf("You have been awarded %d credit points for your idea %q", points, idea.Title),
		Target:       domain.ToEmployee(idea.SubmittedByEmployeeNumber),
		RelatedID:    &ideaID,
		RelatedModel: &model,
	})
	if err != nil {
		return fmt.Errorf("notify credit award: %w", err)
	}
	return nil
}
