package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a directory record that also carries the employee's credit
// ledger balance.
type Employee struct {
	ID             uuid.UUID `json:"id"`
	EmployeeNumber string    `json:"employeeNumber"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	Role           Role      `json:"role"`
	CreditPoints   int       `json:"creditPoints"`
	PhoneNumber    *string   `json:"phoneNumber,omitempty"`
	JoiningDate    time.Time `json:"joiningDate"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
