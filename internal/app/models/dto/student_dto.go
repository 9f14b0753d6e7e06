package dto

// CreateStudentRequest represents student creation data. Dates use the
// YYYY-MM-DD format.
type CreateStudentRequest struct {
	RegistrationNo string `json:"registrationNo" binding:"required,max=30"`
	UserID         int64  `json:"userId" binding:"required,gt=0"`
	FullName       string `json:"fullName" binding:"required,max=150"`
	Gender         string `json:"gender" binding:"required,oneof=Male Female Other"`
	DOB            string `json:"dob" binding:"required,datetime=2006-01-02"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,max=15"`
	Address        string `json:"address" binding:"required"`
	ProgramID      int64  `json:"programId" binding:"required,gt=0"`
	EnrollmentYear int    `json:"enrollmentYear" binding:"required,gt=0"`
}

// UpdateStudentRequest represents student update data.
type UpdateStudentRequest struct {
	RegistrationNo string `json:"registrationNo" binding:"required,max=30"`
	FullName       string `json:"fullName" binding:"required,max=150"`
	Gender         string `json:"gender" binding:"required,oneof=Male Female Other"`
	DOB            string `json:"dob" binding:"required,datetime=2006-01-02"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,max=15"`
	Address        string `json:"address" binding:"required"`
	ProgramID      int64  `json:"programId" binding:"required,gt=0"`
	EnrollmentYear int    `json:"enrollmentYear" binding:"required,gt=0"`
	IsActive       *bool  `json:"isActive"`
}

// BulkStudentItem is one element of a bulk student create or update payload.
// ID is required for updates and ignored on creates.
type BulkStudentItem struct {
	ID             int64  `json:"id"`
	RegistrationNo string `json:"registrationNo" binding:"required,max=30"`
	UserID         int64  `json:"userId" binding:"required,gt=0"`
	FullName       string `json:"fullName" binding:"required,max=150"`
	Gender         string `json:"gender" binding:"required,oneof=Male Female Other"`
	DOB            string `json:"dob" binding:"required,datetime=2006-01-02"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,max=15"`
	Address        string `json:"address" binding:"required"`
	ProgramID      int64  `json:"programId" binding:"required,gt=0"`
	EnrollmentYear int    `json:"enrollmentYear" binding:"required,gt=0"`
}

// CreateStaffRequest represents staff creation data.
type CreateStaffRequest struct {
	UserID        int64  `json:"userId" binding:"required,gt=0"`
	FullName      string `json:"fullName" binding:"required,max=150"`
	StaffType     string `json:"staffType" binding:"required,oneof=Teaching Non-Teaching"`
	DesignationID *int64 `json:"designationId" binding:"omitempty,gt=0"`
	DepartmentID  *int64 `json:"departmentId" binding:"omitempty,gt=0"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=15"`
}

// UpdateStaffRequest represents staff update data.
type UpdateStaffRequest struct {
	FullName      string `json:"fullName" binding:"required,max=150"`
	StaffType     string `json:"staffType" binding:"required,oneof=Teaching Non-Teaching"`
	DesignationID *int64 `json:"designationId" binding:"omitempty,gt=0"`
	DepartmentID  *int64 `json:"departmentId" binding:"omitempty,gt=0"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=15"`
	IsActive      *bool  `json:"isActive"`
}
