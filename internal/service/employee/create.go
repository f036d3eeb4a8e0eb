package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// Create adds an employee to the directory and tells the admins.
// A duplicate employee number or email fails with a *domain.ConflictError
// naming the field.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Employee, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	e := &domain.Employee{
		ID:             uuid.New(),
		EmployeeNumber: strings.TrimSpace(input.EmployeeNumber),
		Name:           domain.CompactSpaces(input.Name),
		Email:          domain.NormalizeEmail(input.Email),
		Department:     strings.TrimSpace(input.Department),
		Role:           input.Role,
		CreditPoints:   input.CreditPoints,
		PhoneNumber:    input.PhoneNumber,
		JoiningDate:    input.JoiningDate,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if e.Role == "" {
		e.Role = domain.RoleEmployee
	}
	if e.JoiningDate.IsZero() {
		e.JoiningDate = now
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var created *domain.Employee
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.employees.Create(ctx, e)
		if err != nil {
			return fmt.Errorf("create employee: %w", err)
		}

		if err := s.notifyAdmins(ctx, domain.NotificationSystemUpdate, "New Employee Added",
			fmt.Sprintf("Employee %s (%s) has been added to the system", created.Name, created.EmployeeNumber),
			created,
		); err != nil {
			return fmt.Errorf("notify employee added: %w", err)
		}

		if err := s.auditEmployee(ctx, caller, created, domain.AuditActionCreate, map[string]any{
			"employeeNumber": map[string]any{"new": created.EmployeeNumber},
			"role":           map[string]any{"new": created.Role},
			"creditPoints":   map[string]any{"new": created.CreditPoints},
		}); err != nil {
			return fmt.Errorf("audit employee create: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, domain.WrapTimeout(err)
	}

	s.log.InfoContext(ctx, "employee created",
		slog.String("employee_id", created.ID.String()),
		slog.String("employee_number", created.EmployeeNumber),
		slog.String("role", string(created.Role)),
	)

	return created, nil
}
