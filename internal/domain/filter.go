package domain

// IdeaSortField is a whitelisted sort key for idea listings.
type IdeaSortField string

const (
	IdeaSortCreatedAt        IdeaSortField = "createdAt"
	IdeaSortUpdatedAt        IdeaSortField = "updatedAt"
	IdeaSortTitle            IdeaSortField = "title"
	IdeaSortStatus           IdeaSortField = "status"
	IdeaSortPriority         IdeaSortField = "priority"
	IdeaSortDepartment       IdeaSortField = "department"
	IdeaSortEstimatedSavings IdeaSortField = "estimatedSavings"
	IdeaSortSubmittedByName  IdeaSortField = "submittedByName"
	IdeaSortReviewedAt       IdeaSortField = "reviewedAt"
)

func (f IdeaSortField) IsValid() bool {
	switch f {
	case IdeaSortCreatedAt, IdeaSortUpdatedAt, IdeaSortTitle, IdeaSortStatus, IdeaSortPriority,
		IdeaSortDepartment, IdeaSortEstimatedSavings, IdeaSortSubmittedByName, IdeaSortReviewedAt:
		return true
	}
	return false
}

// IdeaFilter contains filtering/pagination parameters for idea listings.
// Nil fields do not filter. Listings always exclude inactive ideas.
type IdeaFilter struct {
	Status     *IdeaStatus
	Department *string
	Priority   *Priority
	Search     *string
	SortBy     IdeaSortField
	SortOrder  SortOrder
	Limit      int
	Offset     int
}

// EmployeeSortField is a whitelisted sort key for employee listings.
type EmployeeSortField string

const (
	EmployeeSortCreditPoints   EmployeeSortField = "creditPoints"
	EmployeeSortName           EmployeeSortField = "name"
	EmployeeSortEmployeeNumber EmployeeSortField = "employeeNumber"
	EmployeeSortDepartment     EmployeeSortField = "department"
	EmployeeSortJoiningDate    EmployeeSortField = "joiningDate"
	EmployeeSortCreatedAt      EmployeeSortField = "createdAt"
)

func (f EmployeeSortField) IsValid() bool {
	switch f {
	case EmployeeSortCreditPoints, EmployeeSortName, EmployeeSortEmployeeNumber,
		EmployeeSortDepartment, EmployeeSortJoiningDate, EmployeeSortCreatedAt:
		return true
	}
	return false
}

// EmployeeFilter contains filtering/pagination parameters for the employee directory.
type EmployeeFilter struct {
	Department *string
	Search     *string
	SortBy     EmployeeSortField
	SortOrder  SortOrder
	Limit      int
	Offset     int
}

// NotificationFilter selects notifications visible to a recipient scope.
type NotificationFilter struct {
	Scope  RecipientScope
	IsRead *bool
	Limit  int
	Offset int
}
