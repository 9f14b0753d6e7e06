package models

import "time"

// Student is a registered student profile linked one-to-one to a user account.
type Student struct {
	ID             int64     `json:"id" db:"id"`
	RegistrationNo string    `json:"registrationNo" db:"registration_no"`
	UserID         int64     `json:"userId" db:"user_id"`
	FullName       string    `json:"fullName" db:"full_name"`
	Gender         Gender    `json:"gender" db:"gender"`
	DOB            time.Time `json:"dob" db:"dob"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
	ProgramID      int64     `json:"programId" db:"program_id"`
	EnrollmentYear int       `json:"enrollmentYear" db:"enrollment_year"`
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Program *Program `json:"program,omitempty"`
}

// Age computes the student's age in full years as of now.
func (s *Student) Age(now time.Time) int {
	age := now.Year() - s.DOB.Year()
	if now.Month() < s.DOB.Month() || (now.Month() == s.DOB.Month() && now.Day() < s.DOB.Day()) {
		age--
	}
	return age
}
