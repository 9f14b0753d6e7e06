package models

import "time"

// Enrollment registers a student into a course for a semester and year.
// Unique on (student, course, semester, year).
type Enrollment struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	Semester     int       `json:"semester" db:"semester"`
	Year         int       `json:"year" db:"year"`
	DateEnrolled time.Time `json:"dateEnrolled" db:"date_enrolled"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Denormalized join columns for list views
	StudentName string `json:"studentName,omitempty" db:"-"`
	CourseCode  string `json:"courseCode,omitempty" db:"-"`
}
