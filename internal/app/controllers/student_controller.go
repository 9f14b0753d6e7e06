package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/app/services"
	"github.com/kaanb/campuscore/internal/middleware"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
	"github.com/kaanb/campuscore/internal/pkg/helpers"
)

// StudentController handles student endpoints. Student-role callers only
// ever see their own profile.
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func studentFromCreateRequest(req *dto.CreateStudentRequest) (*models.Student, error) {
	dob, err := helpers.ParseDate(req.DOB)
	if err != nil {
		return nil, err
	}
	return &models.Student{
		RegistrationNo: req.RegistrationNo,
		UserID:         req.UserID,
		FullName:       req.FullName,
		Gender:         models.Gender(req.Gender),
		DOB:            dob,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		ProgramID:      req.ProgramID,
		EnrollmentYear: req.EnrollmentYear,
	}, nil
}

// CreateStudent handles POST /students.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := studentFromCreateRequest(&req)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	if err := c.studentService.CreateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// GetStudentByID handles GET /students/:id. Student-role callers may only
// fetch their own record.
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, role, ok := middleware.CallerIdentity(ctx)
	if ok && role == models.RoleStudent && student.UserID != userID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ListStudents handles GET /students. Student-role callers get a list
// containing only their own profile.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	programID, err := helpers.OptionalInt64Query(ctx, "programId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	enrollmentYear, err := helpers.OptionalIntQuery(ctx, "enrollmentYear")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	isActive, err := helpers.OptionalBoolQuery(ctx, "isActive")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.StudentFilter{
		ProgramID:      programID,
		EnrollmentYear: enrollmentYear,
		Gender:         helpers.OptionalStringQuery(ctx, "gender"),
		IsActive:       isActive,
		Search:         ctx.Query("search"),
		Sort:           ctx.Query("sort"),
	}

	if userID, role, ok := middleware.CallerIdentity(ctx); ok && role == models.RoleStudent {
		filter.UserID = &userID
	}

	students, total, err := c.studentService.ListStudents(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(students, total, page, size)))
}

// UpdateStudent handles PUT /students/:id.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	current, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	dob, err := helpers.ParseDate(req.DOB)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	student := &models.Student{
		ID:             id,
		RegistrationNo: req.RegistrationNo,
		UserID:         current.UserID,
		FullName:       req.FullName,
		Gender:         models.Gender(req.Gender),
		DOB:            dob,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		ProgramID:      req.ProgramID,
		EnrollmentYear: req.EnrollmentYear,
		IsActive:       isActive,
	}
	if err := c.studentService.UpdateStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeactivateStudent handles POST /students/:id/deactivate.
func (c *StudentController) DeactivateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.studentService.DeactivateStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deactivated"}))
}

// DeleteStudent handles DELETE /students/:id.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.studentService.DeleteStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted"}))
}

func studentsFromBulkItems(items []dto.BulkStudentItem) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(items))
	for _, item := range items {
		dob, err := helpers.ParseDate(item.DOB)
		if err != nil {
			return nil, err
		}
		students = append(students, &models.Student{
			ID:             item.ID,
			RegistrationNo: item.RegistrationNo,
			UserID:         item.UserID,
			FullName:       item.FullName,
			Gender:         models.Gender(item.Gender),
			DOB:            dob,
			Email:          item.Email,
			Phone:          item.Phone,
			Address:        item.Address,
			ProgramID:      item.ProgramID,
			EnrollmentYear: item.EnrollmentYear,
		})
	}
	return students, nil
}

// BulkCreateStudents handles POST /students/bulk. The whole batch succeeds
// or fails together.
func (c *StudentController) BulkCreateStudents(ctx *gin.Context) {
	var items []dto.BulkStudentItem
	if err := ctx.ShouldBindJSON(&items); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	students, err := studentsFromBulkItems(items)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	if err := c.studentService.BulkCreateStudents(ctx, students); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(students))
}

// BulkUpdateStudents handles PUT /students/bulk. Unknown IDs are skipped;
// the response carries the rows that were updated.
func (c *StudentController) BulkUpdateStudents(ctx *gin.Context) {
	var items []dto.BulkStudentItem
	if err := ctx.ShouldBindJSON(&items); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	students, err := studentsFromBulkItems(items)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	updated, err := c.studentService.BulkUpdateStudents(ctx, students)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}
