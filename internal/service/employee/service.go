package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/internal/service/notification"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type employeeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByEmployeeNumber(ctx context.Context, number string) (*domain.Employee, error)
	List(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, int, error)
	Departments(ctx context.Context) ([]string, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	SetCredits(ctx context.Context, id uuid.UUID, points int) (*domain.Employee, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Employee, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
}

type notifier interface {
	Notify(ctx context.Context, input notification.NotifyInput) (*domain.Notification, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages the employee directory and administrative corrections of
// the credit ledger. Workflow awards go through the review engine instead.
type Service struct {
	log       *slog.Logger
	employees employeeRepo
	notifier  notifier
	audit     auditRepo
	tx        txManager
	timeout   time.Duration
	now       func() time.Time
}

// NewService creates a new employee service.
func NewService(
	logger *slog.Logger,
	employees employeeRepo,
	notifier notifier,
	audit auditRepo,
	tx txManager,
	timeout time.Duration,
) *Service {
	return &Service{
		log:       logger.With("service", "employee"),
		employees: employees,
		notifier:  notifier,
		audit:     audit,
		tx:        tx,
		timeout:   timeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// requireAdmin returns the caller identity, or ErrUnauthorized for anyone
// but an admin.
func requireAdmin(ctx context.Context) (ctxutil.Identity, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok || !domain.Role(id.Role).IsAdmin() {
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

func (s *Service) auditEmployee(ctx context.Context, caller ctxutil.Identity, e *domain.Employee, action domain.AuditAction, changes map[string]any) error {
	id := e.ID
	return s.audit.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		UserID:     caller.CallerID,
		EntityType: domain.EntityTypeEmployee,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now(),
	})
}

func (s *Service) notifyAdmins(ctx context.Context, typ domain.NotificationType, title, message string, e *domain.Employee) error {
	id := e.ID
	model := domain.RelatedModelEmployee
	_, err := s.notifier.Notify(ctx, notification.NotifyInput{
		Type:         typ,
		Title:        title,
		Message:      message,
		Target:       domain.ToRole(domain.RecipientRoleAdmin),
		RelatedID:    &id,
		RelatedModel: &model,
	})
	return err
}
