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

// AdmissionController handles admission endpoints.
type AdmissionController struct {
	admissionService services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController.
func NewAdmissionController(admissionService services.AdmissionService) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// CreateAdmission handles POST /admissions.
func (c *AdmissionController) CreateAdmission(ctx *gin.Context) {
	var req dto.CreateAdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	admission := &models.Admission{
		StudentID:     req.StudentID,
		ProgramID:     req.ProgramID,
		AdmissionDate: time.Now(),
		Status:        models.AdmissionStatus(req.Status),
	}
	if err := c.admissionService.CreateAdmission(ctx, admission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(admission))
}

// GetAdmissionByID handles GET /admissions/:id.
func (c *AdmissionController) GetAdmissionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	admission, err := c.admissionService.GetAdmissionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission))
}

// ListAdmissions handles GET /admissions.
func (c *AdmissionController) ListAdmissions(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	studentID, err := helpers.OptionalInt64Query(ctx, "studentId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	programID, err := helpers.OptionalInt64Query(ctx, "programId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.AdmissionFilter{
		StudentID: studentID,
		ProgramID: programID,
		Status:    helpers.OptionalStringQuery(ctx, "status"),
		Search:    ctx.Query("search"),
		Sort:      ctx.Query("sort"),
	}

	admissions, total, err := c.admissionService.ListAdmissions(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(admissions, total, page, size)))
}

// UpdateAdmission handles PUT /admissions/:id.
func (c *AdmissionController) UpdateAdmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateAdmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	current, err := c.admissionService.GetAdmissionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	admission := &models.Admission{
		ID:            id,
		StudentID:     current.StudentID,
		ProgramID:     req.ProgramID,
		AdmissionDate: current.AdmissionDate,
		Status:        models.AdmissionStatus(req.Status),
	}
	if err := c.admissionService.UpdateAdmission(ctx, admission); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(admission))
}

// DeleteAdmission handles DELETE /admissions/:id.
func (c *AdmissionController) DeleteAdmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.admissionService.DeleteAdmission(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Admission deleted"}))
}
