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

// EnrollmentController handles enrollment endpoints. Student-role callers
// are scoped to their own enrollments.
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	studentService    services.StudentService
}

// NewEnrollmentController creates a new EnrollmentController.
func NewEnrollmentController(enrollmentService services.EnrollmentService, studentService services.StudentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		studentService:    studentService,
	}
}

// callerStudentID resolves the Student-role caller's profile ID. Returns
// (0, false) for Admin and Staff callers.
func (c *EnrollmentController) callerStudentID(ctx *gin.Context) (int64, bool, error) {
	userID, role, ok := middleware.CallerIdentity(ctx)
	if !ok || role != models.RoleStudent {
		return 0, false, nil
	}
	student, err := c.studentService.GetStudentByUserID(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	return student.ID, true, nil
}

// CreateEnrollment handles POST /enrollments.
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	// Students may only enroll themselves.
	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent && req.StudentID != ownID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Semester:  req.Semester,
		Year:      req.Year,
	}
	if err := c.enrollmentService.CreateEnrollment(ctx, enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment))
}

// GetEnrollmentByID handles GET /enrollments/:id.
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent && enrollment.StudentID != ownID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// ListEnrollments handles GET /enrollments.
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	studentID, err := helpers.OptionalInt64Query(ctx, "studentId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	courseID, err := helpers.OptionalInt64Query(ctx, "courseId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	semester, err := helpers.OptionalIntQuery(ctx, "semester")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	year, err := helpers.OptionalIntQuery(ctx, "year")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.EnrollmentFilter{
		StudentID: studentID,
		CourseID:  courseID,
		Semester:  semester,
		Year:      year,
		Search:    ctx.Query("search"),
		Sort:      ctx.Query("sort"),
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent {
		filter.StudentID = &ownID
	}

	enrollments, total, err := c.enrollmentService.ListEnrollments(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(enrollments, total, page, size)))
}

// UpdateEnrollment handles PUT /enrollments/:id.
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	enrollment := &models.Enrollment{
		ID:       id,
		Semester: req.Semester,
		Year:     req.Year,
	}
	if err := c.enrollmentService.UpdateEnrollment(ctx, enrollment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment))
}

// DeleteEnrollment handles DELETE /enrollments/:id.
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Enrollment deleted"}))
}
