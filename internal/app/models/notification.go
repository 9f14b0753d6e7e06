package models

import "time"

// Notification targets exactly one student or one staff member.
// Rows are written by the post-save hooks in the service layer and by the
// notifications CRUD endpoints.
type Notification struct {
	ID                 int64     `json:"id" db:"id"`
	RecipientStudentID *int64    `json:"recipientStudentId,omitempty" db:"recipient_student_id"`
	RecipientStaffID   *int64    `json:"recipientStaffId,omitempty" db:"recipient_staff_id"`
	NotifType          string    `json:"notifType" db:"notif_type"`
	Title              string    `json:"title" db:"title"`
	Message            string    `json:"message" db:"message"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	Read               bool      `json:"read" db:"read"`
	AutoResolved       bool      `json:"autoResolved" db:"auto_resolved"`
}
