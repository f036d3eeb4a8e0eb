package notification

import "github.com/heartmarshall/kaizen-backend/internal/domain"

// ListResult is one page of a recipient's notifications.
type ListResult struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
	Total         int                   `json:"total"`
	TotalPages    int                   `json:"totalPages"`
	CurrentPage   int                   `json:"currentPage"`
}
