package query

import "github.com/heartmarshall/kaizen-backend/internal/domain"

// IdeaList is one page of ideas plus the values needed to populate filters.
type IdeaList struct {
	Ideas       []domain.Idea       `json:"ideas"`
	Total       int                 `json:"total"`
	Departments []string            `json:"departments"`
	Statuses    []domain.IdeaStatus `json:"statuses"`
	Priorities  []domain.Priority   `json:"priorities"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
}
