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

// ProgramController handles program endpoints.
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController.
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

func programFromCreateRequest(req *dto.CreateProgramRequest) *models.Program {
	return &models.Program{
		ProgramNumber: req.ProgramNumber,
		Name:          req.Name,
		Code:          req.Code,
		ProgramType:   models.ProgramType(req.ProgramType),
		DepartmentID:  req.DepartmentID,
		DurationYears: req.DurationYears,
		Description:   req.Description,
	}
}

// CreateProgram handles POST /programs.
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	program := programFromCreateRequest(&req)
	if err := c.programService.CreateProgram(ctx, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(program))
}

// GetProgramByID handles GET /programs/:id.
func (c *ProgramController) GetProgramByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	program, err := c.programService.GetProgramByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// ListPrograms handles GET /programs.
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	departmentID, err := helpers.OptionalInt64Query(ctx, "departmentId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.ProgramFilter{
		DepartmentID: departmentID,
		ProgramType:  helpers.OptionalStringQuery(ctx, "programType"),
		Code:         helpers.OptionalStringQuery(ctx, "code"),
		Search:       ctx.Query("search"),
		Sort:         ctx.Query("sort"),
	}

	programs, total, err := c.programService.ListPrograms(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(programs, total, page, size)))
}

// UpdateProgram handles PUT /programs/:id.
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	program := &models.Program{
		ID:            id,
		ProgramNumber: req.ProgramNumber,
		Name:          req.Name,
		Code:          req.Code,
		ProgramType:   models.ProgramType(req.ProgramType),
		DepartmentID:  req.DepartmentID,
		DurationYears: req.DurationYears,
		Description:   req.Description,
	}
	if err := c.programService.UpdateProgram(ctx, program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// DeleteProgram handles DELETE /programs/:id.
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.programService.DeleteProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Program deleted"}))
}
