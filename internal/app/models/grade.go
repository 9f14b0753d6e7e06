package models

import "time"

// Grade is a student's obtained marks in one exam.
type Grade struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	ExamID        int64     `json:"examId" db:"exam_id"`
	ObtainedMarks float64   `json:"obtainedMarks" db:"obtained_marks"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Denormalized join columns for list views
	StudentName string `json:"studentName,omitempty" db:"-"`
	CourseTitle string `json:"courseTitle,omitempty" db:"-"`
}
