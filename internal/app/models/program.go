package models

import "time"

// Program is a degree program offered by a department.
type Program struct {
	ID            int64       `json:"id" db:"id"`
	ProgramNumber int         `json:"programNumber" db:"program_number"`
	Name          string      `json:"name" db:"name"`
	Code          string      `json:"code" db:"code"`
	ProgramType   ProgramType `json:"programType" db:"program_type"`
	DepartmentID  int64       `json:"departmentId" db:"department_id"`
	DurationYears int         `json:"durationYears" db:"duration_years"`
	Description   *string     `json:"description,omitempty" db:"description"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
