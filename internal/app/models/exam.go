package models

import "time"

// Exam is a scheduled assessment for a course.
type Exam struct {
	ID         int64     `json:"id" db:"id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	ExamType   ExamType  `json:"examType" db:"exam_type"`
	Date       time.Time `json:"date" db:"date"`
	TotalMarks int       `json:"totalMarks" db:"total_marks"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`

	// Denormalized join column for list views
	CourseTitle string `json:"courseTitle,omitempty" db:"-"`
}
