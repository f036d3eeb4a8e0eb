package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// Get returns an active employee by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", domain.WrapTimeout(err))
	}
	return e, nil
}

// GetByNumber returns an active employee by employee number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*domain.Employee, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.NewValidationError("employeeNumber", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e, err := s.employees.GetByEmployeeNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get employee by number: %w", domain.WrapTimeout(err))
	}
	return e, nil
}

// List returns one page of active employees, highest balance first unless
// another order is requested.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := domain.PageRequest{Page: input.Page, Limit: input.Limit}.Normalize(defaultListLimit)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	employees, total, err := s.employees.List(ctx, input.filter(page))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", domain.WrapTimeout(err))
	}
	departments, err := s.employees.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", domain.WrapTimeout(err))
	}

	if employees == nil {
		employees = []domain.Employee{}
	}
	if departments == nil {
		departments = []string{}
	}

	return &ListResult{
		Employees:   employees,
		Total:       total,
		Departments: departments,
		TotalPages:  domain.TotalPages(total, page.Limit),
		CurrentPage: page.Page,
	}, nil
}
