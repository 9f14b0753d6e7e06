package models

import "time"

// Attendance is one student's mark for one course on one day.
// Unique on (student, course, date).
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	CourseID  int64            `json:"courseId" db:"course_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`

	// Denormalized join columns for list views
	StudentName string `json:"studentName,omitempty" db:"-"`
	CourseCode  string `json:"courseCode,omitempty" db:"-"`
}
