package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a single fan-out event addressed to an employee, a role, or both.
// It is only ever mutated to flip IsRead.
type Notification struct {
	ID                      uuid.UUID        `json:"id"`
	Type                    NotificationType `json:"type"`
	Title                   string           `json:"title"`
	Message                 string           `json:"message"`
	RecipientEmployeeNumber *string          `json:"recipientEmployeeNumber"`
	RecipientRole           RecipientRole    `json:"recipientRole"`
	RelatedID               *uuid.UUID       `json:"relatedId"`
	RelatedModel            *RelatedModel    `json:"relatedModel"`
	IsRead                  bool             `json:"isRead"`
	Priority                Priority         `json:"priority"`
	ActionURL               *string          `json:"actionUrl,omitempty"`
	IsActive                bool             `json:"isActive"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
}

// NotificationTarget is the recipient scope of a dispatched notification.
// An empty Role means RecipientRoleAll.
type NotificationTarget struct {
	EmployeeNumber string
	Role           RecipientRole
}

// ToEmployee targets a single employee (role scope stays "all").
func ToEmployee(employeeNumber string) NotificationTarget {
	return NotificationTarget{EmployeeNumber: employeeNumber, Role: RecipientRoleAll}
}

// ToRole targets every holder of role.
func ToRole(role RecipientRole) NotificationTarget {
	return NotificationTarget{Role: role}
}

// RecipientScope describes who is reading notifications.
// MatchEmployee additionally restricts employee-targeted notifications
// to EmployeeNumber.
type RecipientScope struct {
	Role           RecipientRole
	EmployeeNumber string
	MatchEmployee  bool
}
