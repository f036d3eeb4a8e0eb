package domain

// IdeaStatus is the review lifecycle state of an idea.
type IdeaStatus string

const (
	IdeaStatusUnderReview IdeaStatus = "under_review"
	IdeaStatusOngoing     IdeaStatus = "ongoing"
	IdeaStatusApproved    IdeaStatus = "approved"
	IdeaStatusImplemented IdeaStatus = "implemented"
	IdeaStatusRejected    IdeaStatus = "rejected"
)

func (s IdeaStatus) String() string { return string(s) }

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusUnderReview, IdeaStatusOngoing, IdeaStatusApproved,
		IdeaStatusImplemented, IdeaStatusRejected:
		return true
	}
	return false
}

// IsRewarded reports whether entering this status earns the submitter credit points.
func (s IdeaStatus) IsRewarded() bool {
	return s == IdeaStatusApproved || s == IdeaStatusImplemented
}

// IdeaStatuses returns the fixed status enumeration in lifecycle order.
func IdeaStatuses() []IdeaStatus {
	return []IdeaStatus{
		IdeaStatusUnderReview,
		IdeaStatusOngoing,
		IdeaStatusApproved,
		IdeaStatusImplemented,
		IdeaStatusRejected,
	}
}

// Priority is shared by ideas and notifications.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Priorities returns the fixed priority enumeration from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Role is the authorization level of an employee.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReviewer Role = "reviewer"
	RoleEmployee Role = "employee"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleReviewer, RoleEmployee:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanReview reports whether the role may move ideas through the review lifecycle.
func (r Role) CanReview() bool {
	return r == RoleAdmin || r == RoleReviewer
}

// RecipientRole addresses a notification to every holder of a role.
// RecipientRoleAll is the catch-all scope.
type RecipientRole string

const (
	RecipientRoleAdmin    RecipientRole = "admin"
	RecipientRoleReviewer RecipientRole = "reviewer"
	RecipientRoleEmployee RecipientRole = "employee"
	RecipientRoleAll      RecipientRole = "all"
)

func (r RecipientRole) String() string { return string(r) }

func (r RecipientRole) IsValid() bool {
	switch r {
	case RecipientRoleAdmin, RecipientRoleReviewer, RecipientRoleEmployee, RecipientRoleAll:
		return true
	}
	return false
}

// NotificationType enumerates the events that produce notifications.
type NotificationType string

const (
	NotificationIdeaSubmitted       NotificationType = "idea_submitted"
	NotificationIdeaStatusUpdated   NotificationType = "idea_status_updated"
	NotificationCreditPointsUpdated NotificationType = "credit_points_updated"
	NotificationNewReviewerAdded    NotificationType = "new_reviewer_added"
	NotificationIdeaReviewed        NotificationType = "idea_reviewed"
	NotificationSystemUpdate        NotificationType = "system_update"
	NotificationEmployeeDeleted     NotificationType = "employee_deleted"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationIdeaSubmitted, NotificationIdeaStatusUpdated, NotificationCreditPointsUpdated,
		NotificationNewReviewerAdded, NotificationIdeaReviewed, NotificationSystemUpdate,
		NotificationEmployeeDeleted:
		return true
	}
	return false
}

// RelatedModel names the kind of record a notification references.
type RelatedModel string

const (
	RelatedModelIdea     RelatedModel = "Idea"
	RelatedModelEmployee RelatedModel = "Employee"
	RelatedModelUser     RelatedModel = "User"
)

func (m RelatedModel) String() string { return string(m) }

func (m RelatedModel) IsValid() bool {
	switch m {
	case RelatedModelIdea, RelatedModelEmployee, RelatedModelUser:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeIdea         EntityType = "IDEA"
	EntityTypeEmployee     EntityType = "EMPLOYEE"
	EntityTypeNotification EntityType = "NOTIFICATION"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeIdea, EntityTypeEmployee, EntityTypeNotification:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}
