package review

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

const maxReviewCommentsLen = 5000

// UpdateStatusInput is one reviewer decision on an idea.
type UpdateStatusInput struct {
	IdeaID         uuid.UUID
	Status         domain.IdeaStatus
	ReviewComments *string // overwrites when non-nil
	Priority       *domain.Priority
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.ReviewComments != nil && len(*i.ReviewComments) > maxReviewCommentsLen {
		errs = append(errs, domain.FieldError{Field: "reviewComments", Message: "max 5000 characters"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
