// Package notification implements the Notification store using PostgreSQL.
// Notifications are append-only apart from the read flag.
package notification

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/kaizen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const notificationColumns = `id, type, title, message, recipient_employee_number, recipient_role,
	related_id, related_model, is_read, priority, action_url, is_active, created_at, updated_at`

// RecipientPredicate selects the active notifications visible to scope: those
// addressed to the scope's role or to "all". With MatchEmployee set, a
// notification addressed to a specific employee is only visible to that
// employee.
func RecipientPredicate(scope domain.RecipientScope) sq.And {
	pred := sq.And{
		sq.Eq{"is_active": true},
		sq.Eq{"recipient_role": []string{string(scope.Role), string(domain.RecipientRoleAll)}},
	}
	if scope.MatchEmployee {
		pred = append(pred, sq.Or{
			sq.Eq{"recipient_employee_number": nil},
			sq.Eq{"recipient_employee_number": scope.EmployeeNumber},
		})
	}
	return pred
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts one notification and returns the stored record.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var relatedModel *string
	if n.RelatedModel != nil {
		s := string(*n.RelatedModel)
		relatedModel = &s
	}

	row := q.QueryRow(ctx,
		`INSERT INTO notifications (id, type, title, message, recipient_employee_number, recipient_role,
		                            related_id, related_model, is_read, priority, action_url, is_active,
		                            created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9, $10, true, $11, $11)
		 RETURNING `+notificationColumns,
		n.ID, string(n.Type), n.Title, n.Message, n.RecipientEmployeeNumber, string(n.RecipientRole),
		uuidPtrToPgUUID(n.RelatedID), relatedModel, string(n.Priority), n.ActionURL, n.CreatedAt,
	)
	created, err := scanNotification(row)
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return created, nil
}

// MarkRead sets is_read on the notification and returns it.
// Returns domain.ErrNotFound if the notification does not exist.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE notifications
		 SET is_read = true, updated_at = CASE WHEN is_read THEN updated_at ELSE now() END
		 WHERE id = $1
		 RETURNING `+notificationColumns, id)
	n, err := scanNotification(row)
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return n, nil
}

// MarkAllRead flips every unread notification visible to scope and returns
// how many changed. Zero matches is not an error.
func (r *Repo) MarkAllRead(ctx context.Context, scope domain.RecipientScope) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.Update("notifications").
		Set("is_read", true).
		Set("updated_at", sq.Expr("now()")).
		Where(RecipientPredicate(scope)).
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build mark all read: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "notifications", scope.Role)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns notifications visible to the filter's scope, newest first,
// and the total number of matches ignoring pagination.
func (r *Repo) List(ctx context.Context, f domain.NotificationFilter) ([]domain.Notification, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := RecipientPredicate(f.Scope)
	if f.IsRead != nil {
		where = append(where, sq.Eq{"is_read": *f.IsRead})
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From("notifications").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count notifications: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "notifications", f.Scope.Role)
	}

	listQuery := postgres.Builder.Select(notificationColumns).From("notifications").Where(where).
		OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		listQuery = listQuery.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		listQuery = listQuery.Offset(uint64(f.Offset))
	}

	listSQL, listArgs, err := listQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list notifications: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "notifications", f.Scope.Role)
	}

	notifications, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Notification, error) {
		n, err := scanNotification(row)
		if err != nil {
			return domain.Notification{}, err
		}
		return *n, nil
	})
	if err != nil {
		return nil, 0, postgres.MapError(err, "notifications", f.Scope.Role)
	}

	return notifications, total, nil
}

// CountUnread returns the number of unread notifications visible to scope.
func (r *Repo) CountUnread(ctx context.Context, scope domain.RecipientScope) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.Select("count(*)").From("notifications").
		Where(RecipientPredicate(scope)).
		Where(sq.Eq{"is_read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count unread: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "notifications", scope.Role)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanNotification(row pgx.Row) (*domain.Notification, error) {
	var (
		n                   domain.Notification
		typ, role, priority string
		relatedID           pgtype.UUID
		relatedModel        *string
	)

	err := row.Scan(
		&n.ID, &typ, &n.Title, &n.Message, &n.RecipientEmployeeNumber, &role,
		&relatedID, &relatedModel, &n.IsRead, &priority, &n.ActionURL, &n.IsActive, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	n.Type = domain.NotificationType(typ)
	n.RecipientRole = domain.RecipientRole(role)
	n.Priority = domain.Priority(priority)
	if relatedID.Valid {
		id := uuid.UUID(relatedID.Bytes)
		n.RelatedID = &id
	}
	if relatedModel != nil {
		m := domain.RelatedModel(*relatedModel)
		n.RelatedModel = &m
	}

	return &n, nil
}

// uuidPtrToPgUUID converts a *uuid.UUID to pgtype.UUID (nil -> NULL).
func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
