// Package employee implements the employee directory and credit ledger using
// PostgreSQL. Balance changes are single-statement updates so concurrent
// awards never lose an increment.
package employee

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kaizen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// Repo provides employee persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new employee repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const employeeColumns = `id, employee_number, name, email, department, role, credit_points,
	phone_number, joining_date, is_active, created_at, updated_at`

var sortColumns = map[domain.EmployeeSortField]string{
	domain.EmployeeSortCreditPoints:   "credit_points",
	domain.EmployeeSortName:           "name",
	domain.EmployeeSortEmployeeNumber: "employee_number",
	domain.EmployeeSortDepartment:     "department",
	domain.EmployeeSortJoiningDate:    "joining_date",
	domain.EmployeeSortCreatedAt:      "created_at",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active employee by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 AND is_active`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}
	return e, nil
}

// GetByEmployeeNumber returns an active employee by employee number.
func (r *Repo) GetByEmployeeNumber(ctx context.Context, number string) (*domain.Employee, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE employee_number = $1 AND is_active`, number)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", number)
	}
	return e, nil
}

// List returns active employees matching the filter and the total match count.
func (r *Repo) List(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"is_active": true}}
	if f.Department != nil {
		where = append(where, sq.Eq{"department": *f.Department})
	}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.SearchAny(*f.Search, "name", "employee_number", "email"))
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("employees").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count employees: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "employees", "count")
	}

	sortCol, ok := sortColumns[f.SortBy]
	if !ok {
		sortCol = sortColumns[domain.EmployeeSortCreditPoints]
	}
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	listQuery := postgres.Builder.Select(employeeColumns).From("employees").Where(where).
		OrderBy(sortCol+" "+dir, "employee_number ASC")
	if f.Limit > 0 {
		listQuery = listQuery.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		listQuery = listQuery.Offset(uint64(f.Offset))
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list employees: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "employees", "list")
	}

	employees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Employee, error) {
		e, err := scanEmployee(row)
		if err != nil {
			return domain.Employee{}, err
		}
		return *e, nil
	})
	if err != nil {
		return nil, 0, postgres.MapError(err, "employees", "list")
	}

	return employees, total, nil
}

// Departments returns the distinct departments of active employees, sorted.
func (r *Repo) Departments(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT DISTINCT department FROM employees WHERE is_active ORDER BY department`)
	if err != nil {
		return nil, postgres.MapError(err, "employees", "departments")
	}

	departments, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "employees", "departments")
	}
	return departments, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new employee. A duplicate employee number or email is
// reported as a *domain.ConflictError naming the field.
func (r *Repo) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO employees (id, employee_number, name, email, department, role, credit_points,
		                        phone_number, joining_date, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, $10, $10)
		 RETURNING `+employeeColumns,
		e.ID, e.EmployeeNumber, e.Name, e.Email, e.Department, string(e.Role), e.CreditPoints,
		e.PhoneNumber, e.JoiningDate, e.CreatedAt,
	)
	created, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", e.EmployeeNumber)
	}
	return created, nil
}

// IncrementCredits atomically adds amount to the balance of the active
// employee with the given number and returns the new balance.
func (r *Repo) IncrementCredits(ctx context.Context, employeeNumber string, amount int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var balance int
	err := q.QueryRow(ctx,
		`UPDATE employees
		 SET credit_points = credit_points + $2, updated_at = now()
		 WHERE employee_number = $1 AND is_active
		 RETURNING credit_points`,
		employeeNumber, amount,
	).Scan(&balance)
	if err != nil {
		return 0, postgres.MapError(err, "employee", employeeNumber)
	}
	return balance, nil
}

// SetCredits overwrites the balance of an active employee (administrative correction).
func (r *Repo) SetCredits(ctx context.Context, id uuid.UUID, points int) (*domain.Employee, error) {
	return r.update(ctx, id, `credit_points = $2`, points)
}

// SetRole changes the role of an active employee.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Employee, error) {
	return r.update(ctx, id, `role = $2`, string(role))
}

// Deactivate soft-deletes an active employee and returns the final state.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE employees SET is_active = false, updated_at = now()
		 WHERE id = $1 AND is_active
		 RETURNING `+employeeColumns, id)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}
	return e, nil
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set string, arg any) (*domain.Employee, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE employees SET `+set+`, updated_at = now()
		 WHERE id = $1 AND is_active
		 RETURNING `+employeeColumns, id, arg)
	e, err := scanEmployee(row)
	if err != nil {
		return nil, postgres.MapError(err, "employee", id)
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var (
		e    domain.Employee
		role string
	)

	err := row.Scan(
		&e.ID, &e.EmployeeNumber, &e.Name, &e.Email, &e.Department, &role, &e.CreditPoints,
		&e.PhoneNumber, &e.JoiningDate, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Role = domain.Role(role)
	return &e, nil
}
