package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// uniqueFields maps unique constraint names to the caller-facing field
// reported in a domain.ConflictError.
var uniqueFields = map[string]string{
	"employees_employee_number_key": "employeeNumber",
	"employees_email_key":           "email",
}

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// record in the message (an ID, an employee number, or anything printable).
// context.Canceled passes through; context.DeadlineExceeded is tagged with
// domain.ErrTimeout but still unwraps to the original context error.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.WrapTimeout(err))
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if field, ok := uniqueFields[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s %v: %w", entity, key, &domain.ConflictError{Field: field})
			}
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, key, domain.ErrValidation)
		case "57014": // query_canceled (statement_timeout)
			return fmt.Errorf("%s %v: %w: %w", entity, key, domain.ErrTimeout, err)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}
