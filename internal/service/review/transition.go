package review

import (
	"fmt"

	"github.com/heartmarshall/kaizen-backend/internal/domain"
)

// TransitionRule decides whether an idea may move from one status to another.
// A non-nil error aborts the transition before anything is written.
type TransitionRule func(from, to domain.IdeaStatus) error

// PermissiveTransitions accepts any target status from any source status.
// Reviewers may freely re-open or correct a decision.
func PermissiveTransitions(from, to domain.IdeaStatus) error {
	return nil
}

var strictGraph = map[domain.IdeaStatus][]domain.IdeaStatus{
	domain.IdeaStatusUnderReview: {domain.IdeaStatusOngoing, domain.IdeaStatusApproved, domain.IdeaStatusRejected},
	domain.IdeaStatusOngoing:     {domain.IdeaStatusUnderReview, domain.IdeaStatusApproved, domain.IdeaStatusRejected},
	domain.IdeaStatusApproved:    {domain.IdeaStatusOngoing, domain.IdeaStatusImplemented, domain.IdeaStatusRejected},
	domain.IdeaStatusRejected:    {domain.IdeaStatusUnderReview},
	domain.IdeaStatusImplemented: nil,
}

// StrictTransitions only allows the edges of the review graph. Implemented
// is terminal. A violation is reported as domain.ErrConflict.
func StrictTransitions(from, to domain.IdeaStatus) error {
	for _, next := range strictGraph[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: illegal transition %s -> %s", domain.ErrConflict, from, to)
}
