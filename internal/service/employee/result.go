package employee

import "github.com/heartmarshall/kaizen-backend/internal/domain"

// ListResult is one page of the directory, ordered as requested (the
// leaderboard by default).
type ListResult struct {
	Employees   []domain.Employee `json:"employees"`
	Total       int               `json:"total"`
	Departments []string          `json:"departments"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}
