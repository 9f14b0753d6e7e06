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

// AttendanceController handles attendance endpoints.
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController.
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// CreateAttendance handles POST /attendance.
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
	}
	if err := c.attendanceService.CreateAttendance(ctx, record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(record))
}

// GetAttendanceByID handles GET /attendance/:id.
func (c *AttendanceController) GetAttendanceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	record, err := c.attendanceService.GetAttendanceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// ListAttendance handles GET /attendance.
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
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

	var date *time.Time
	if dateStr := ctx.Query("date"); dateStr != "" {
		parsed, err := helpers.ParseDate(dateStr)
		if err != nil {
			middleware.HandleValidationError(ctx, err)
			return
		}
		date = &parsed
	}

	filter := repositories.AttendanceFilter{
		StudentID: studentID,
		CourseID:  courseID,
		Status:    helpers.OptionalStringQuery(ctx, "status"),
		Date:      date,
		Sort:      ctx.Query("sort"),
	}

	records, total, err := c.attendanceService.ListAttendance(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(records, total, page, size)))
}

// UpdateAttendance handles PUT /attendance/:id. Only the status can change;
// student, course and date identify the mark.
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	record := &models.Attendance{
		ID:     id,
		Status: models.AttendanceStatus(req.Status),
	}
	if err := c.attendanceService.UpdateAttendance(ctx, record); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// DeleteAttendance handles DELETE /attendance/:id.
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Attendance record deleted"}))
}
