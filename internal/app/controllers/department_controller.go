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

// DepartmentController handles department endpoints.
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// CreateDepartment handles POST /departments.
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department := &models.Department{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		HodID:       req.HodID,
	}
	if err := c.departmentService.CreateDepartment(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(department))
}

// GetDepartmentByID handles GET /departments/:id.
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	department, err := c.departmentService.GetDepartmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// ListDepartments handles GET /departments.
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := repositories.DepartmentFilter{
		Name:   helpers.OptionalStringQuery(ctx, "name"),
		Code:   helpers.OptionalStringQuery(ctx, "code"),
		Search: ctx.Query("search"),
		Sort:   ctx.Query("sort"),
	}

	departments, total, err := c.departmentService.ListDepartments(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(departments, total, page, size)))
}

// UpdateDepartment handles PUT /departments/:id.
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department := &models.Department{
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		HodID:       req.HodID,
	}
	if err := c.departmentService.UpdateDepartment(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(department))
}

// DeleteDepartment handles DELETE /departments/:id.
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Department deleted"}))
}
