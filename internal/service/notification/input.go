package notification

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// NotifyInput describes one notification to dispatch.
type NotifyInput struct {
	Type         domain.NotificationType
	Title        string
	Message      string
	Target       domain.NotificationTarget
	RelatedID    *uuid.UUID
	RelatedModel *domain.RelatedModel
	Priority     domain.Priority // defaults to medium
	ActionURL    *string
}

// Validate checks all fields and collects all errors.
func (i NotifyInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid notification type"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if i.Target.Role != "" && !i.Target.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "recipientRole", Message: "invalid role"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if i.RelatedModel != nil && !i.RelatedModel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "relatedModel", Message: "invalid related model"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RecipientInput identifies whose notifications an operation reads or marks.
// Empty fields are taken from the caller identity.
type RecipientInput struct {
	Role           domain.RecipientRole
	EmployeeNumber string
}

// Validate checks all fields and collects all errors.
func (i RecipientInput) Validate() error {
	if i.Role != "" && !i.Role.IsValid() {
		return domain.NewValidationError("role", "invalid role")
	}
	return nil
}

// ListInput holds the parameters for listing a recipient's notifications.
type ListInput struct {
	RecipientInput
	IsRead *bool
	Page   int
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}
	errs = append(errs, domain.PageRequest{Page: i.Page, Limit: i.Limit}.FieldErrors()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
