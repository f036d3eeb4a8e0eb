package query

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// filterAll disables a filter, as does an empty value.
const filterAll = "all"

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	maxSearchLen        = 200
)

// ListIdeasInput holds untrusted listing parameters. String filters accept
// "all" or "" to mean no filter.
type ListIdeasInput struct {
	Page       int
	Limit      int
	Status     string
	Department string
	Priority   string
	Search     string
	SortBy     string
	SortOrder  string
}

// Validate checks all fields and collects all errors.
func (i ListIdeasInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, domain.PageRequest{Page: i.Page, Limit: i.Limit}.FieldErrors()...)

	if !isAll(i.Status) && !domain.IdeaStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if !isAll(i.Priority) && !domain.Priority(i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if len(i.Search) > maxSearchLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}
	if i.SortBy != "" && !domain.IdeaSortField(i.SortBy).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "unsupported sort field"})
	}
	if i.SortOrder != "" && !domain.SortOrder(strings.ToLower(i.SortOrder)).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// filter converts validated input into a typed store filter.
func (i ListIdeasInput) filter(page domain.PageRequest) domain.IdeaFilter {
	f := domain.IdeaFilter{
		SortBy:    domain.IdeaSortCreatedAt,
		SortOrder: domain.SortDesc,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	}

	if !isAll(i.Status) {
		status := domain.IdeaStatus(i.Status)
		f.Status = &status
	}
	if !isAll(i.Department) {
		department := strings.TrimSpace(i.Department)
		f.Department = &department
	}
	if !isAll(i.Priority) {
		priority := domain.Priority(i.Priority)
		f.Priority = &priority
	}
	if search := domain.CompactSpaces(i.Search); search != "" {
		f.Search = &search
	}
	if i.SortBy != "" {
		f.SortBy = domain.IdeaSortField(i.SortBy)
	}
	if i.SortOrder != "" {
		f.SortOrder = domain.SortOrder(strings.ToLower(i.SortOrder))
	}

	return f
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, filterAll)
}

// HistoryInput selects the audit trail of one idea.
type HistoryInput struct {
	IdeaID uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.IdeaID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "ideaId", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxHistoryLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
