package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEmployee inserts an active employee. Zero-valued fields of tmpl are
// filled with unique defaults; the returned value is what was stored.
// Use DeactivateEmployee to soft delete.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool, tmpl domain.Employee) domain.Employee {
	t.Helper()

	suffix := UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	e := tmpl
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.EmployeeNumber == "" {
		e.EmployeeNumber = "EMP-" + suffix
	}
	if e.Name == "" {
		e.Name = "Employee " + suffix
	}
	if e.Email == "" {
		e.Email = "employee-" + suffix + "@example.com"
	}
	if e.Department == "" {
		e.Department = "Dept-" + suffix
	}
	if e.Role == "" {
		e.Role = domain.RoleEmployee
	}
	if e.JoiningDate.IsZero() {
		e.JoiningDate = now
	}
	e.IsActive = true
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO employees (id, employee_number, name, email, department, role, credit_points,
		                        phone_number, joining_date, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, $10, $11)`,
		e.ID, e.EmployeeNumber, e.Name, e.Email, e.Department, string(e.Role), e.CreditPoints,
		e.PhoneNumber, e.JoiningDate, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee: %v", err)
	}

	return e
}

// DeactivateEmployee soft-deletes an employee.
func DeactivateEmployee(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`UPDATE employees SET is_active = false WHERE id = $1`, id); err != nil {
		t.Fatalf("testhelper: DeactivateEmployee: %v", err)
	}
}

// SeedIdea inserts an idea. Zero-valued fields of tmpl are filled with
// defaults (status under_review, priority medium, active). Set
// tmpl.CreatedAt to backdate the idea.
func SeedIdea(t *testing.T, pool *pgxpool.Pool, tmpl domain.Idea) domain.Idea {
	t.Helper()

	suffix := UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	i := tmpl
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Title == "" {
		i.Title = "Idea " + suffix
	}
	if i.Problem == "" {
		i.Problem = "Problem " + suffix
	}
	if i.Improvement == "" {
		i.Improvement = "Improvement " + suffix
	}
	if i.Benefit == "" {
		i.Benefit = "Benefit " + suffix
	}
	if i.Department == "" {
		i.Department = "Dept-" + suffix
	}
	if i.Priority == "" {
		i.Priority = domain.PriorityMedium
	}
	if i.Status == "" {
		i.Status = domain.IdeaStatusUnderReview
	}
	if i.SubmittedByEmployeeNumber == "" {
		i.SubmittedByEmployeeNumber = "EMP-" + suffix
	}
	if i.SubmittedByName == "" {
		i.SubmittedByName = "Submitter " + suffix
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = i.CreatedAt
	i.IsActive = true

	_, err := pool.Exec(context.Background(),
		`INSERT INTO ideas (id, title, problem, improvement, benefit, department, priority, status,
		                    submitted_by_employee_number, submitted_by_name, estimated_savings,
		                    is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, $12, $13)`,
		i.ID, i.Title, i.Problem, i.Improvement, i.Benefit, i.Department, string(i.Priority), string(i.Status),
		i.SubmittedByEmployeeNumber, i.SubmittedByName,
		pgtype.Numeric{Int: i.EstimatedSavings.Coefficient(), Exp: i.EstimatedSavings.Exponent(), Valid: true},
		i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIdea: %v", err)
	}

	return i
}

// DeactivateIdea soft-deletes an idea.
func DeactivateIdea(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) {
	t.Helper()

	if _, err := pool.Exec(context.Background(),
		`UPDATE ideas SET is_active = false WHERE id = $1`, id); err != nil {
		t.Fatalf("testhelper: DeactivateIdea: %v", err)
	}
}

// SeedNotification inserts a notification. Zero-valued fields of tmpl are
// filled with defaults (type system_update, role all, priority medium).
// active overrides tmpl.IsActive.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, tmpl domain.Notification, active bool) domain.Notification {
	t.Helper()

	suffix := UniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)

	n := tmpl
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Type == "" {
		n.Type = domain.NotificationSystemUpdate
	}
	if n.Title == "" {
		n.Title = "Notice " + suffix
	}
	if n.Message == "" {
		n.Message = "Message " + suffix
	}
	if n.RecipientRole == "" {
		n.RecipientRole = domain.RecipientRoleAll
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityMedium
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = n.CreatedAt
	n.IsActive = active

	var relatedModel *string
	if n.RelatedModel != nil {
		s := string(*n.RelatedModel)
		relatedModel = &s
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO notifications (id, type, title, message, recipient_employee_number, recipient_role,
		                            related_id, related_model, is_read, priority, action_url, is_active,
		                            created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		n.ID, string(n.Type), n.Title, n.Message, n.RecipientEmployeeNumber, string(n.RecipientRole),
		n.RelatedID, relatedModel, n.IsRead, string(n.Priority), n.ActionURL, n.IsActive,
		n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNotification: %v", err)
	}

	return n
}

// Truncate empties the given tables. Tests that assert on table-wide counts
// (role-scoped notifications, dashboard aggregates) call it first and must
// not run in parallel with other tests of the same package.
func Truncate(t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "TRUNCATE "+strings.Join(tables, ", ")); err != nil {
		t.Fatalf("testhelper: Truncate: %v", err)
	}
}
