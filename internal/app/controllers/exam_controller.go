package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/app/services"
	"github.com/kaanb/campuscore/internal/middleware"
	"github.com/kaanb/campuscore/internal/pkg/helpers"
)

// ExamController handles exam endpoints.
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController.
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// CreateExam handles POST /exams.
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	exam := &models.Exam{
		CourseID:   req.CourseID,
		ExamType:   models.ExamType(req.ExamType),
		Date:       date,
		TotalMarks: req.TotalMarks,
	}
	if err := c.examService.CreateExam(ctx, exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}

// GetExamByID handles GET /exams/:id.
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	exam, err := c.examService.GetExamByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// ListExams handles GET /exams.
func (c *ExamController) ListExams(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	courseID, err := helpers.OptionalInt64Query(ctx, "courseId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var date *time.Time
	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := helpers.ParseDate(dateStr)
		if err != nil {
			middleware.HandleValidationError(ctx, err)
			return
		}
		date = &parsed
	}

	filter := repositories.ExamFilter{
		CourseID: courseID,
		ExamType: helpers.OptionalStringQuery(ctx, "examType"),
		Date:     date,
		Search:   ctx.Query("search"),
		Sort:     ctx.Query("sort"),
	}

	exams, total, err := c.examService.ListExams(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(exams, total, page, size)))
}

// UpdateExam handles PUT /exams/:id.
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	exam := &models.Exam{
		ID:         id,
		ExamType:   models.ExamType(req.ExamType),
		Date:       date,
		TotalMarks: req.TotalMarks,
	}
	if err := c.examService.UpdateExam(ctx, exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// DeleteExam handles DELETE /exams/:id.
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.examService.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Exam deleted"}))
}
