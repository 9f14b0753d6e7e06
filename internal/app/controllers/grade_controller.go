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

// GradeController handles grade endpoints. Student-role callers are scoped
// to their own grades.
type GradeController struct {
	gradeService   services.GradeService
	studentService services.StudentService
}

// NewGradeController creates a new GradeController.
func NewGradeController(gradeService services.GradeService, studentService services.StudentService) *GradeController {
	return &GradeController{
		gradeService:   gradeService,
		studentService: studentService,
	}
}

func (c *GradeController) callerStudentID(ctx *gin.Context) (int64, bool, error) {
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

// CreateGrade handles POST /grades.
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	grade := &models.Grade{
		StudentID:     req.StudentID,
		ExamID:        req.ExamID,
		ObtainedMarks: req.ObtainedMarks,
	}
	if err := c.gradeService.CreateGrade(ctx, grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(grade))
}

// GetGradeByID handles GET /grades/:id.
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	grade, err := c.gradeService.GetGradeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent && grade.StudentID != ownID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}

// ListGrades handles GET /grades.
func (c *GradeController) ListGrades(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	studentID, err := helpers.OptionalInt64Query(ctx, "studentId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	examID, err := helpers.OptionalInt64Query(ctx, "examId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.GradeFilter{
		StudentID: studentID,
		ExamID:    examID,
		Search:    ctx.Query("search"),
		Sort:      ctx.Query("sort"),
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent {
		filter.StudentID = &ownID
	}

	grades, total, err := c.gradeService.ListGrades(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(grades, total, page, size)))
}

// UpdateGrade handles PUT /grades/:id.
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	grade := &models.Grade{
		ID:            id,
		ObtainedMarks: req.ObtainedMarks,
	}
	if err := c.gradeService.UpdateGrade(ctx, grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grade))
}

// DeleteGrade handles DELETE /grades/:id.
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Grade deleted"}))
}
