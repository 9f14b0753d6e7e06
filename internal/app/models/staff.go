package models

import "time"

// Staff is an employee profile linked one-to-one to a user account.
type Staff struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"userId" db:"user_id"`
	FullName      string    `json:"fullName" db:"full_name"`
	StaffType     StaffType `json:"staffType" db:"staff_type"`
	DesignationID *int64    `json:"designationId,omitempty" db:"designation_id"`
	DepartmentID  *int64    `json:"departmentId,omitempty" db:"department_id"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	DateJoined    time.Time `json:"dateJoined" db:"date_joined"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Designation *Designation `json:"designation,omitempty"`
	Department  *Department  `json:"department,omitempty"`
}
