package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/notification"
)

// AdjustCredits overwrites an employee's balance as an administrative
// correction and notifies the employee.
func (s *Service) AdjustCredits(ctx context.Context, input AdjustCreditsInput) (*domain.Employee, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var updated *domain.Employee
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.employees.GetByID(ctx, input.EmployeeID)
		if err != nil {
			return fmt.Errorf("get employee: %w", err)
		}

		updated, err = s.employees.SetCredits(ctx, input.EmployeeID, input.CreditPoints)
		if err != nil {
			return fmt.Errorf("set credits: %w", err)
		}

		message := fmt.Sprintf("Your credit points have been updated to %d.", updated.CreditPoints)
		if input.Reason != nil && strings.TrimSpace(*input.Reason) != "" {
			message += " " + strings.TrimSpace(*input.Reason)
		}
		employeeID := updated.ID
		model := domain.RelatedModelEmployee
		if _, err := s.notifier.Notify(ctx, notification.NotifyInput{
			Type:         domain.NotificationCreditPointsUpdated,
			Title:        "Credit Points Updated",
			Message:      message,
			Target:       domain.ToEmployee(updated.EmployeeNumber),
			RelatedID:    &employeeID,
			RelatedModel: &model,
		}); err != nil {
			return fmt.Errorf("notify credits updated: %w", err)
		}

		changes := map[string]any{"creditPoints": domain.Change(current.CreditPoints, updated.CreditPoints)}
		if input.Reason != nil {
			changes["reason"] = *input.Reason
		}
		if err := s.auditEmployee(ctx, caller, updated, domain.AuditActionUpdate, changes); err != nil {
			return fmt.Errorf("audit credit adjustment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, domain.WrapTimeout(err)
	}

	s.log.InfoContext(ctx, "credits adjusted",
		slog.String("employee_id", updated.ID.String()),
		slog.Int("credit_points", updated.CreditPoints),
	)

	return updated, nil
}

// SetRole changes an employee's role. Promotion to reviewer is announced to
// the admins.
func (s *Service) SetRole(ctx context.Context, input SetRoleInput) (*domain.Employee, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var updated *domain.Employee
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.employees.GetByID(ctx, input.EmployeeID)
		if err != nil {
			return fmt.Errorf("get employee: %w", err)
		}
		if current.Role == input.Role {
			updated = current
			return nil
		}

		updated, err = s.employees.SetRole(ctx, input.EmployeeID, input.Role)
		if err != nil {
			return fmt.Errorf("set role: %w", err)
		}

		if updated.Role == domain.RoleReviewer {
			if err := s.notifyAdmins(ctx, domain.NotificationNewReviewerAdded, "New Reviewer Added",
				fmt.Sprintf("%s (%s) is now a reviewer", updated.Name, updated.EmployeeNumber),
				updated,
			); err != nil {
				return fmt.Errorf("notify reviewer added: %w", err)
			}
		}

		if err := s.auditEmployee(ctx, caller, updated, domain.AuditActionUpdate, map[string]any{
			"role": domain.Change(current.Role, updated.Role),
		}); err != nil {
			return fmt.Errorf("audit role change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, domain.WrapTimeout(err)
	}

	s.log.InfoContext(ctx, "employee role set",
		slog.String("employee_id", updated.ID.String()),
		slog.String("role", string(updated.Role)),
	)

	return updated, nil
}

// Delete soft-deletes an employee. The record and its history are kept.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var removed *domain.Employee
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.employees.Deactivate(ctx, id)
		if err != nil {
			return fmt.Errorf("deactivate employee: %w", err)
		}

		if err := s.notifyAdmins(ctx, domain.NotificationEmployeeDeleted, "Employee Removed",
			fmt.Sprintf("Employee %s (%s) has been removed from the system", removed.Name, removed.EmployeeNumber),
			removed,
		); err != nil {
			return fmt.Errorf("notify employee removed: %w", err)
		}

		if err := s.auditEmployee(ctx, caller, removed, domain.AuditActionDelete, map[string]any{
			"isActive": domain.Change(true, false),
		}); err != nil {
			return fmt.Errorf("audit employee delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.WrapTimeout(err)
	}

	s.log.InfoContext(ctx, "employee deleted",
		slog.String("employee_id", removed.ID.String()),
		slog.String("employee_number", removed.EmployeeNumber),
	)

	return nil
}
