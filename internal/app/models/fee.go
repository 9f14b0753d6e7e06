package models

import "time"

// Fee is a payable amount assigned to a student.
type Fee struct {
	ID          int64      `json:"id" db:"id"`
	StudentID   int64      `json:"studentId" db:"student_id"`
	Amount      float64    `json:"amount" db:"amount"`
	DueDate     time.Time  `json:"dueDate" db:"due_date"`
	IsPaid      bool       `json:"isPaid" db:"is_paid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty" db:"payment_date"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`

	// Denormalized join column for list views
	StudentName string `json:"studentName,omitempty" db:"-"`
}

// Status reports Paid or Unpaid for API responses.
func (f *Fee) Status() string {
	if f.IsPaid {
		return "Paid"
	}
	return "Unpaid"
}

// IsOverdue reports whether an unpaid fee is past its due date.
func (f *Fee) IsOverdue(now time.Time) bool {
	return !f.IsPaid && f.DueDate.Before(now)
}
