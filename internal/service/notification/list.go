package notification

import (
	"context"
	"fmt"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
	"github.com/heartmarshall/kaizen-backend/pkg/ctxutil"
)

// List returns one page of the notifications visible to the recipient,
// newest first, with the recipient's unread count.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	scope, err := s.resolveScope(ctx, input.RecipientInput)
	if err != nil {
		return nil, err
	}

	page := domain.PageRequest{Page: input.Page, Limit: input.Limit}.Normalize(s.pageSize())

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, total, err := s.notifications.List(ctx, domain.NotificationFilter{
		Scope:  scope,
		IsRead: input.IsRead,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", domain.WrapTimeout(err))
	}

	unread, err := s.notifications.CountUnread(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", domain.WrapTimeout(err))
	}

	if items == nil {
		items = []domain.Notification{}
	}

	return &ListResult{
		Notifications: items,
		UnreadCount:   unread,
		Total:         total,
		TotalPages:    domain.TotalPages(total, page.Limit),
		CurrentPage:   page.Page,
	}, nil
}

// UnreadCount returns the number of unread notifications visible to the recipient.
func (s *Service) UnreadCount(ctx context.Context, input RecipientInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	scope, err := s.resolveScope(ctx, input)
	if err != nil {
		return 0, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.notifications.CountUnread(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", domain.WrapTimeout(err))
	}
	return n, nil
}

// resolveScope fills the recipient from the caller identity. Only admins may
// act on behalf of another role or another employee.
func (s *Service) resolveScope(ctx context.Context, input RecipientInput) (domain.RecipientScope, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.RecipientScope{}, domain.ErrUnauthorized
	}

	role := input.Role
	if role == "" {
		role = domain.RecipientRole(id.Role)
	}
	if role != domain.RecipientRole(id.Role) && !domain.Role(id.Role).IsAdmin() {
		return domain.RecipientScope{}, domain.ErrUnauthorized
	}

	employeeNumber := input.EmployeeNumber
	if employeeNumber == "" {
		employeeNumber = id.EmployeeNumber
	}
	if employeeNumber != id.EmployeeNumber && !domain.Role(id.Role).IsAdmin() {
		return domain.RecipientScope{}, domain.ErrUnauthorized
	}

	return domain.RecipientScope{
		Role:           role,
		EmployeeNumber: employeeNumber,
		MatchEmployee:  s.cfg.MatchEmployeeTarget,
	}, nil
}
