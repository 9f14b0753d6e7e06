package models

import "time"

// Course is a single course taught within a program semester.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code"`
	Title       string    `json:"title" db:"title"`
	CreditHours float64   `json:"creditHours" db:"credit_hours"`
	Semester    int       `json:"semester" db:"semester"` // 1..8
	ProgramID   int64     `json:"programId" db:"program_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Program *Program `json:"program,omitempty"`
}
