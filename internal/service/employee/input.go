package employee

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxNameLen       = 200
	maxReasonLen     = 500
)

// ListInput holds the directory listing parameters. Department accepts
// "all" or "" to mean no filter.
type ListInput struct {
	Department string
	Search     string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, domain.PageRequest{Page: i.Page, Limit: i.Limit}.FieldErrors()...)
	if i.SortBy != "" && !domain.EmployeeSortField(i.SortBy).IsValid() {
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

func (i ListInput) filter(page domain.PageRequest) domain.EmployeeFilter {
	f := domain.EmployeeFilter{
		SortBy:    domain.EmployeeSortCreditPoints,
		SortOrder: domain.SortDesc,
		Limit:     page.Limit,
		Offset:    page.Offset(),
	}
	if d := strings.TrimSpace(i.Department); d != "" && !strings.EqualFold(d, "all") {
		f.Department = &d
	}
	if search := domain.CompactSpaces(i.Search); search != "" {
		f.Search = &search
	}
	if i.SortBy != "" {
		f.SortBy = domain.EmployeeSortField(i.SortBy)
	}
	if i.SortOrder != "" {
		f.SortOrder = domain.SortOrder(strings.ToLower(i.SortOrder))
	}
	return f
}

// CreateInput describes a new directory entry.
type CreateInput struct {
	EmployeeNumber string
	Name           string
	Email          string
	Department     string
	Role           domain.Role // defaults to employee
	CreditPoints   int
	PhoneNumber    *string
	JoiningDate    time.Time // defaults to now
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.EmployeeNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "employeeNumber", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(strings.TrimSpace(i.Email)); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if strings.TrimSpace(i.Department) == "" {
		errs = append(errs, domain.FieldError{Field: "department", Message: "required"})
	}
	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}
	if i.CreditPoints < 0 {
		errs = append(errs, domain.FieldError{Field: "creditPoints", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdjustCreditsInput is an administrative correction of a balance.
type AdjustCreditsInput struct {
	EmployeeID   uuid.UUID
	CreditPoints int
	Reason       *string
}

// Validate checks all fields and collects all errors.
func (i AdjustCreditsInput) Validate() error {
	var errs []domain.FieldError

	if i.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.CreditPoints < 0 {
		errs = append(errs, domain.FieldError{Field: "creditPoints", Message: "must be non-negative"})
	}
	if i.Reason != nil && len(*i.Reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetRoleInput changes the authorization level of an employee.
type SetRoleInput struct {
	EmployeeID uuid.UUID
	Role       domain.Role
}

// Validate checks all fields and collects all errors.
func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
