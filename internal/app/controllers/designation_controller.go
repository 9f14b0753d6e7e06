package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/app/services"
	"github.com/kaanb/campuscore/internal/middleware"
	"github.com/kaanb/campuscore/internal/pkg/helpers"
)

// DesignationController handles designation endpoints.
type DesignationController struct {
	designationService services.DesignationService
}

// NewDesignationController creates a new DesignationController.
func NewDesignationController(designationService services.DesignationService) *DesignationController {
	return &DesignationController{
		designationService: designationService,
	}
}

// CreateDesignation handles POST /designations.
func (c *DesignationController) CreateDesignation(ctx *gin.Context) {
	var req dto.CreateDesignationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	designation := &models.Designation{Title: req.Title}
	if err := c.designationService.CreateDesignation(ctx, designation); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(designation))
}

// GetDesignationByID handles GET /designations/:id.
func (c *DesignationController) GetDesignationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	designation, err := c.designationService.GetDesignationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(designation))
}

// ListDesignations handles GET /designations.
func (c *DesignationController) ListDesignations(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := repositories.DesignationFilter{
		Search: ctx.Query("search"),
		Sort:   ctx.Query("sort"),
	}

	designations, total, err := c.designationService.ListDesignations(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(designations, total, page, size)))
}

// UpdateDesignation handles PUT /designations/:id.
func (c *DesignationController) UpdateDesignation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateDesignationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	designation := &models.Designation{ID: id, Title: req.Title}
	if err := c.designationService.UpdateDesignation(ctx, designation); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(designation))
}

// DeleteDesignation handles DELETE /designations/:id.
func (c *DesignationController) DeleteDesignation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.designationService.DeleteDesignation(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Designation deleted"}))
}
