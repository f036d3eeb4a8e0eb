package query

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// GetIdea returns an active idea. Inactive ideas are reported as not found.
func (s *Service) GetIdea(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	idea, err := s.ideas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get idea: %w", domain.WrapTimeout(err))
	}
	return idea, nil
}

// ReviewHistory returns the audit trail of an idea, newest first.
func (s *Service) ReviewHistory(ctx context.Context, input HistoryInput) ([]domain.AuditRecord, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeIdea, input.IdeaID, limit)
	if err != nil {
		return nil, fmt.Errorf("get review history: %w", domain.WrapTimeout(err))
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	return records, nil
}
