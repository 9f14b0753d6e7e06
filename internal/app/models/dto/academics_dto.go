package dto

// CreateAdmissionRequest represents admission creation data.
type CreateAdmissionRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	ProgramID int64  `json:"programId" binding:"required,gt=0"`
	Status    string `json:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
}

// UpdateAdmissionRequest represents admission update data.
type UpdateAdmissionRequest struct {
	ProgramID int64  `json:"programId" binding:"required,gt=0"`
	Status    string `json:"status" binding:"required,oneof=Pending Approved Rejected"`
}

// CreateEnrollmentRequest represents enrollment creation data.
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
	CourseID  int64 `json:"courseId" binding:"required,gt=0"`
	Semester  int   `json:"semester" binding:"required,min=1,max=8"`
	Year      int   `json:"year" binding:"required,gt=0"`
}

// UpdateEnrollmentRequest represents enrollment update data.
type UpdateEnrollmentRequest struct {
	Semester int `json:"semester" binding:"required,min=1,max=8"`
	Year     int `json:"year" binding:"required,gt=0"`
}

// CreateAttendanceRequest represents attendance creation data.
type CreateAttendanceRequest struct {
	StudentID int64  `json:"studentId" binding:"required,gt=0"`
	CourseID  int64  `json:"courseId" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,oneof=Present Absent Leave"`
}

// UpdateAttendanceRequest represents attendance update data.
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=Present Absent Leave"`
}

// CreateExamRequest represents exam creation data.
type CreateExamRequest struct {
	CourseID   int64  `json:"courseId" binding:"required,gt=0"`
	ExamType   string `json:"examType" binding:"required,oneof=Midterm Final Quiz Assignment"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	TotalMarks int    `json:"totalMarks" binding:"omitempty,gt=0"`
}

// UpdateExamRequest represents exam update data.
type UpdateExamRequest struct {
	ExamType   string `json:"examType" binding:"required,oneof=Midterm Final Quiz Assignment"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	TotalMarks int    `json:"totalMarks" binding:"required,gt=0"`
}

// CreateGradeRequest represents grade creation data.
type CreateGradeRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,gt=0"`
	ExamID        int64   `json:"examId" binding:"required,gt=0"`
	ObtainedMarks float64 `json:"obtainedMarks" binding:"min=0"`
}

// UpdateGradeRequest represents grade update data.
type UpdateGradeRequest struct {
	ObtainedMarks float64 `json:"obtainedMarks" binding:"min=0"`
}

// CreateFeeRequest represents fee creation data.
type CreateFeeRequest struct {
	StudentID int64   `json:"studentId" binding:"required,gt=0"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	DueDate   string  `json:"dueDate" binding:"required,datetime=2006-01-02"`
}

// UpdateFeeRequest represents fee update data.
type UpdateFeeRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	DueDate string  `json:"dueDate" binding:"required,datetime=2006-01-02"`
	IsPaid  *bool   `json:"isPaid"`
}

// CreateNotificationRequest represents manual notification creation data.
// Exactly one recipient must be set.
type CreateNotificationRequest struct {
	RecipientStudentID *int64 `json:"recipientStudentId" binding:"omitempty,gt=0"`
	RecipientStaffID   *int64 `json:"recipientStaffId" binding:"omitempty,gt=0"`
	NotifType          string `json:"notifType" binding:"required,max=50"`
	Title              string `json:"title" binding:"required,max=150"`
	Message            string `json:"message" binding:"required"`
}
