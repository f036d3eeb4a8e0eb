package domain

// StatusCount is one bucket of the status distribution.
type StatusCount struct {
	Status IdeaStatus `json:"status"`
	Count  int        `json:"count"`
}

// DepartmentCount is one bucket of the department distribution.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// MonthlyCount is the number of ideas created in a calendar month (UTC).
type MonthlyCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// DashboardStats aggregates active ideas for the review dashboard.
type DashboardStats struct {
	TotalIdeas         int               `json:"totalIdeas"`
	UnderReview        int               `json:"underReview"`
	Approved           int               `json:"approved"`
	Implemented        int               `json:"implemented"`
	StatusDistribution []StatusCount     `json:"statusDistribution"`
	DepartmentStats    []DepartmentCount `json:"departmentStats"`
	MonthlyTrends      []MonthlyCount    `json:"monthlyTrends"`
}

// CountFor returns the count recorded for status, or 0.
func (d DashboardStats) CountFor(status IdeaStatus) int {
	for _, sc := range d.StatusDistribution {
		if sc.Status == status {
			return sc.Count
		}
	}
	return 0
}
