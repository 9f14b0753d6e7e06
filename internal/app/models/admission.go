package models

import "time"

// Admission is a per-student application record for a program.
// One admission exists per student.
type Admission struct {
	ID            int64           `json:"id" db:"id"`
	StudentID     int64           `json:"studentId" db:"student_id"`
	ProgramID     int64           `json:"programId" db:"program_id"`
	AdmissionDate time.Time       `json:"admissionDate" db:"admission_date"`
	Status        AdmissionStatus `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Program *Program `json:"program,omitempty"`

	// Denormalized join columns for list views
	StudentName string `json:"studentName,omitempty" db:"-"`
	ProgramName string `json:"programName,omitempty" db:"-"`
}
