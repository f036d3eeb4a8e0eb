// Package idea implements the Idea store using PostgreSQL.
// It serves the review workflow (row-locked reads, review updates) and the
// query side (filtered listings, dashboard aggregates).
package idea

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/kaizen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// Repo provides idea persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new idea repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ideaColumns = `id, title, problem, improvement, benefit, department, priority, status,
	submitted_by_employee_number, submitted_by_name, estimated_savings,
	reviewed_by, reviewed_at, review_comments, is_active, created_at, updated_at`

// sortColumns maps whitelisted sort fields to SQL expressions.
var sortColumns = map[domain.IdeaSortField]string{
	domain.IdeaSortCreatedAt:        "created_at",
	domain.IdeaSortUpdatedAt:        "updated_at",
	domain.IdeaSortTitle:            "title",
	domain.IdeaSortStatus:           "status",
	domain.IdeaSortPriority:         "CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 WHEN 'urgent' THEN 4 END",
	domain.IdeaSortDepartment:       "department",
	domain.IdeaSortEstimatedSavings: "estimated_savings",
	domain.IdeaSortSubmittedByName:  "submitted_by_name",
	domain.IdeaSortReviewedAt:       "reviewed_at",
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active idea by primary key.
// Inactive ideas are reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+ideaColumns+` FROM ideas WHERE id = $1 AND is_active`, id)
	idea, err := scanIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return idea, nil
}

// GetForUpdate returns an active idea and locks its row until the surrounding
// transaction ends. Concurrent reviews of the same idea serialize here.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+ideaColumns+` FROM ideas WHERE id = $1 AND is_active FOR UPDATE`, id)
	idea, err := scanIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return idea, nil
}

// List returns active ideas matching the filter, plus the total number of
// matches ignoring pagination.
func (r *Repo) List(ctx context.Context, f domain.IdeaFilter) ([]domain.Idea, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := filterPredicate(f)

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("ideas").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count ideas: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "ideas", "count")
	}

	sortCol, ok := sortColumns[f.SortBy]
	if !ok {
		sortCol = sortColumns[domain.IdeaSortCreatedAt]
	}
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	listQuery := postgres.Builder.Select(ideaColumns).From("ideas").Where(where).
		OrderBy(sortCol+" "+dir+" NULLS LAST", "id "+dir)
	if f.Limit > 0 {
		listQuery = listQuery.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		listQuery = listQuery.Offset(uint64(f.Offset))
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list ideas: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "ideas", "list")
	}
	defer rows.Close()

	ideas := make([]domain.Idea, 0, f.Limit)
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "ideas", "scan")
		}
		ideas = append(ideas, *idea)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "ideas", "list")
	}

	return ideas, total, nil
}

// Departments returns the distinct departments of active ideas, sorted.
func (r *Repo) Departments(ctx context.Context) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT DISTINCT department FROM ideas WHERE is_active ORDER BY department`)
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "departments")
	}

	departments, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "departments")
	}
	return departments, nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// CountActive returns the number of active ideas.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM ideas WHERE is_active`).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "ideas", "count")
	}
	return n, nil
}

// CountByStatus returns the status distribution of active ideas.
// Statuses with no ideas are omitted.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT status, count(*) FROM ideas WHERE is_active GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "status distribution")
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusCount, error) {
		var (
			status string
			sc     domain.StatusCount
		)
		err := row.Scan(&status, &sc.Count)
		sc.Status = domain.IdeaStatus(status)
		return sc, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "status distribution")
	}
	return counts, nil
}

// CountByDepartment returns the department distribution of active ideas,
// largest first; ties are broken by department name.
func (r *Repo) CountByDepartment(ctx context.Context) ([]domain.DepartmentCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT department, count(*) AS n FROM ideas WHERE is_active
		 GROUP BY department ORDER BY n DESC, department ASC`)
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "department distribution")
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepartmentCount, error) {
		var dc domain.DepartmentCount
		err := row.Scan(&dc.Department, &dc.Count)
		return dc, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "department distribution")
	}
	return counts, nil
}

// MonthlyCounts returns the number of active ideas created per UTC calendar
// month since the given instant, in chronological order.
func (r *Repo) MonthlyCounts(ctx context.Context, since time.Time) ([]domain.MonthlyCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC')::int  AS y,
		        EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS m,
		        count(*)
		 FROM ideas
		 WHERE is_active AND created_at >= $1
		 GROUP BY y, m
		 ORDER BY y, m`, since)
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "monthly trend")
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonthlyCount, error) {
		var mc domain.MonthlyCount
		err := row.Scan(&mc.Year, &mc.Month, &mc.Count)
		return mc, err
	})
	if err != nil {
		return nil, postgres.MapError(err, "ideas", "monthly trend")
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateReview applies a review transition to an active idea and returns the
// updated row. ReviewComments and Priority are kept when nil.
func (r *Repo) UpdateReview(ctx context.Context, id uuid.UUID, rv domain.IdeaReview) (*domain.Idea, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var priority *string
	if rv.Priority != nil {
		p := string(*rv.Priority)
		priority = &p
	}

	row := q.QueryRow(ctx,
		`UPDATE ideas SET
		     status          = $2,
		     reviewed_by     = $3,
		     reviewed_at     = $4,
		     review_comments = COALESCE($5, review_comments),
		     priority        = COALESCE($6, priority),
		     updated_at      = $4
		 WHERE id = $1 AND is_active
		 RETURNING `+ideaColumns,
		id, string(rv.Status), rv.ReviewedBy, rv.ReviewedAt, rv.ReviewComments, priority,
	)
	idea, err := scanIdea(row)
	if err != nil {
		return nil, postgres.MapError(err, "idea", id)
	}
	return idea, nil
}

// ---------------------------------------------------------------------------
// Filter predicate
// ---------------------------------------------------------------------------

// filterPredicate turns a typed filter into a SQL predicate. Only active
// ideas are ever matched.
func filterPredicate(f domain.IdeaFilter) sq.And {
	where := sq.And{sq.Eq{"is_active": true}}

	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}
	if f.Department != nil {
		where = append(where, sq.Eq{"department": *f.Department})
	}
	if f.Priority != nil {
		where = append(where, sq.Eq{"priority": string(*f.Priority)})
	}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.SearchAny(*f.Search,
			"title", "problem", "submitted_by_name", "submitted_by_employee_number"))
	}

	return where
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanIdea(row pgx.Row) (*domain.Idea, error) {
	var (
		i                domain.Idea
		priority, status string
		savings          pgtype.Numeric
		reviewedBy       pgtype.UUID
	)

	err := row.Scan(
		&i.ID, &i.Title, &i.Problem, &i.Improvement, &i.Benefit, &i.Department, &priority, &status,
		&i.SubmittedByEmployeeNumber, &i.SubmittedByName, &savings,
		&reviewedBy, &i.ReviewedAt, &i.ReviewComments, &i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	i.Priority = domain.Priority(priority)
	i.Status = domain.IdeaStatus(status)
	i.EstimatedSavings = numericToDecimal(savings)
	if reviewedBy.Valid {
		id := uuid.UUID(reviewedBy.Bytes)
		i.ReviewedBy = &id
	}

	return &i, nil
}

// numericToDecimal converts a pgtype.Numeric to decimal.Decimal (NULL and NaN → 0).
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
