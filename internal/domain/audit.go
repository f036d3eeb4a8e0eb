package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	EntityType EntityType     `json:"entityType"`
	EntityID   *uuid.UUID     `json:"entityId"`
	Action     AuditAction    `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// Change is the old/new pair stored under a field name in AuditRecord.Changes.
func Change(oldValue, newValue any) map[string]any {
	return map[string]any{"old": oldValue, "new": newValue}
}
