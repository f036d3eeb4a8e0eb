package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kaizen-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/kaizen-backend/internal/adapter/postgres/audit"
	employeerepo "github.com/heartmarshall/kaizen-backend/internal/adapter/postgres/employee"
	idearepo "github.com/heartmarshall/kaizen-backend/internal/adapter/postgres/idea"
	notificationrepo "github.com/heartmarshall/kaizen-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/kaizen-backend/internal/config"
	"github.com/heartmarshall/kaizen-backend/internal/service/employee"
	"github.com/heartmarshall/kaizen-backend/internal/service/notification"
	"github.com/heartmarshall/kaizen-backend/internal/service/query"
	"github.com/heartmarshall/kaizen-backend/internal/service/review"
)

// Services is the constructed service graph. Every service shares one pool
// and one transaction manager; none holds other mutable state.
type Services struct {
	Review        *review.Service
	Query         *query.Service
	Notifications *notification.Service
	Employees     *employee.Service
}

// NewServices wires stores and services on top of an open pool.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Services {
	timeout := cfg.Database.QueryTimeout

	ideas := idearepo.New(pool)
	employees := employeerepo.New(pool)
	notifications := notificationrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	notifier := notification.NewService(logger, notifications, cfg.Notifications, timeout)

	return &Services{
		Review:        review.NewService(logger, ideas, employees, notifier, audit, tx, cfg.Workflow, timeout),
		Query:         query.NewService(logger, ideas, audit, timeout),
		Notifications: notifier,
		Employees:     employee.NewService(logger, employees, notifier, audit, tx, timeout),
	}
}
