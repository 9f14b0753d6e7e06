package dto

// CreateProgramRequest represents program creation data.
type CreateProgramRequest struct {
	ProgramNumber int     `json:"programNumber" binding:"required,gt=0"`
	Name          string  `json:"name" binding:"required,max=100"`
	Code          string  `json:"code" binding:"required,max=20"`
	ProgramType   string  `json:"programType" binding:"required,oneof=BS MS PhD Diploma"`
	DepartmentID  int64   `json:"departmentId" binding:"required,gt=0"`
	DurationYears int     `json:"durationYears" binding:"omitempty,gt=0"`
	Description   *string `json:"description"`
}

// UpdateProgramRequest represents program update data.
type UpdateProgramRequest struct {
	ProgramNumber int     `json:"programNumber" binding:"required,gt=0"`
	Name          string  `json:"name" binding:"required,max=100"`
	Code          string  `json:"code" binding:"required,max=20"`
	ProgramType   string  `json:"programType" binding:"required,oneof=BS MS PhD Diploma"`
	DepartmentID  int64   `json:"departmentId" binding:"required,gt=0"`
	DurationYears int     `json:"durationYears" binding:"omitempty,gt=0"`
	Description   *string `json:"description"`
}

// CreateCourseRequest represents course creation data.
type CreateCourseRequest struct {
	Code        string  `json:"code" binding:"required,max=20"`
	Title       string  `json:"title" binding:"required,max=150"`
	CreditHours float64 `json:"creditHours" binding:"required,gt=0"`
	Semester    int     `json:"semester" binding:"required,min=1,max=8"`
	ProgramID   int64   `json:"programId" binding:"required,gt=0"`
}

// UpdateCourseRequest represents course update data.
type UpdateCourseRequest struct {
	Code        string  `json:"code" binding:"required,max=20"`
	Title       string  `json:"title" binding:"required,max=150"`
	CreditHours float64 `json:"creditHours" binding:"required,gt=0"`
	Semester    int     `json:"semester" binding:"required,min=1,max=8"`
	ProgramID   int64   `json:"programId" binding:"required,gt=0"`
}

// BulkCourseItem is one element of a bulk course create or update payload.
// ID is required for updates and ignored on creates.
type BulkCourseItem struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code" binding:"required,max=20"`
	Title       string  `json:"title" binding:"required,max=150"`
	CreditHours float64 `json:"creditHours" binding:"required,gt=0"`
	Semester    int     `json:"semester" binding:"required,min=1,max=8"`
	ProgramID   int64   `json:"programId" binding:"required,gt=0"`
}
