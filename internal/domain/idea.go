package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Idea is a submitted improvement proposal tracked through the review lifecycle.
// Ideas are never hard-deleted; IsActive=false hides them from listings and
// aggregates while keeping them for audit.
type Idea struct {
	ID                        uuid.UUID       `json:"id"`
	Title                     string          `json:"title"`
	Problem                   string          `json:"problem"`
	Improvement               string          `json:"improvement"`
	Benefit                   string          `json:"benefit"`
	Department                string          `json:"department"`
	Priority                  Priority        `json:"priority"`
	Status                    IdeaStatus      `json:"status"`
	SubmittedByEmployeeNumber string          `json:"submittedByEmployeeNumber"`
	SubmittedByName           string          `json:"submittedByName"`
	EstimatedSavings          decimal.Decimal `json:"estimatedSavings"`
	ReviewedBy                *uuid.UUID      `json:"reviewedBy"`
	ReviewedAt                *time.Time      `json:"reviewedAt"`
	ReviewComments            *string         `json:"reviewComments"`
	IsActive                  bool            `json:"isActive"`
	CreatedAt                 time.Time       `json:"createdAt"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// IdeaReview is the set of fields a reviewer writes in one status transition.
// ReviewComments and Priority are only overwritten when non-nil.
type IdeaReview struct {
	Status         IdeaStatus
	ReviewedBy     uuid.UUID
	ReviewedAt     time.Time
	ReviewComments *string
	Priority       *Priority
}
