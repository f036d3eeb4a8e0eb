package review

import "github.com/heartmarshall/kaizen-backend/internal/domain"

// RewardPolicy computes the credit points a transition earns the submitter.
type RewardPolicy struct {
	ApprovedPoints    int
	ImplementedPoints int
	// GuardRepeats suppresses the award when the idea already had the target
	// status. Off by default: every transition into a rewarded status pays.
	GuardRepeats bool
}

// Award returns the points for moving from prev to next, or 0.
func (p RewardPolicy) Award(prev, next domain.IdeaStatus) int {
	if p.GuardRepeats && prev == next {
		return 0
	}
	switch next {
	case domain.IdeaStatusApproved:
		return p.ApprovedPoints
	case domain.IdeaStatusImplemented:
		return p.ImplementedPoints
	default:
		return 0
	}
}
