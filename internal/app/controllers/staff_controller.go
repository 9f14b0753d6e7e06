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

// StaffController handles staff endpoints.
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController.
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// CreateStaff handles POST /staff.
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	staff := &models.Staff{
		UserID:        req.UserID,
		FullName:      req.FullName,
		StaffType:     models.StaffType(req.StaffType),
		DesignationID: req.DesignationID,
		DepartmentID:  req.DepartmentID,
		Email:         req.Email,
		Phone:         req.Phone,
		DateJoined:    time.Now(),
	}
	if err := c.staffService.CreateStaff(ctx, staff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(staff))
}

// GetStaffByID handles GET /staff/:id.
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	staff, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staff))
}

// ListStaff handles GET /staff.
func (c *StaffController) ListStaff(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	departmentID, err := helpers.OptionalInt64Query(ctx, "departmentId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	designationID, err := helpers.OptionalInt64Query(ctx, "designationId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	isActive, err := helpers.OptionalBoolQuery(ctx, "isActive")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.StaffFilter{
		DepartmentID:  departmentID,
		DesignationID: designationID,
		StaffType:     helpers.OptionalStringQuery(ctx, "staffType"),
		IsActive:      isActive,
		Search:        ctx.Query("search"),
		Sort:          ctx.Query("sort"),
	}

	members, total, err := c.staffService.ListStaff(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(members, total, page, size)))
}

// UpdateStaff handles PUT /staff/:id.
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	current, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	staff := &models.Staff{
		ID:            id,
		UserID:        current.UserID,
		FullName:      req.FullName,
		StaffType:     models.StaffType(req.StaffType),
		DesignationID: req.DesignationID,
		DepartmentID:  req.DepartmentID,
		Email:         req.Email,
		Phone:         req.Phone,
		DateJoined:    current.DateJoined,
		IsActive:      isActive,
	}
	if err := c.staffService.UpdateStaff(ctx, staff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staff))
}

// DeactivateStaff handles POST /staff/:id/deactivate.
func (c *StaffController) DeactivateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.staffService.DeactivateStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Staff member deactivated"}))
}

// DeleteStaff handles DELETE /staff/:id.
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.staffService.DeleteStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Staff member deleted"}))
}
