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

// FeeController handles fee endpoints. Student-role callers are scoped to
// their own fees.
type FeeController struct {
	feeService     services.FeeService
	studentService services.StudentService
}

// NewFeeController creates a new FeeController.
func NewFeeController(feeService services.FeeService, studentService services.StudentService) *FeeController {
	return &FeeController{
		feeService:     feeService,
		studentService: studentService,
	}
}

func (c *FeeController) callerStudentID(ctx *gin.Context) (int64, bool, error) {
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

// CreateFee handles POST /fees.
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	fee := &models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		DueDate:   dueDate,
	}
	if err := c.feeService.CreateFee(ctx, fee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(fee))
}

// GetFeeByID handles GET /fees/:id.
func (c *FeeController) GetFeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	fee, err := c.feeService.GetFeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent && fee.StudentID != ownID {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// ListFees handles GET /fees.
func (c *FeeController) ListFees(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	studentID, err := helpers.OptionalInt64Query(ctx, "studentId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	isPaid, err := helpers.OptionalBoolQuery(ctx, "isPaid")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.FeeFilter{
		StudentID: studentID,
		IsPaid:    isPaid,
		Search:    ctx.Query("search"),
		Sort:      ctx.Query("sort"),
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent {
		filter.StudentID = &ownID
	}

	fees, total, err := c.feeService.ListFees(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(fees, total, page, size)))
}

// UpdateFee handles PUT /fees/:id.
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	var req dto.UpdateFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	dueDate, err := helpers.ParseDate(req.DueDate)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	current, err := c.feeService.GetFeeByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	isPaid := current.IsPaid
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	fee := &models.Fee{
		ID:          id,
		StudentID:   current.StudentID,
		Amount:      req.Amount,
		DueDate:     dueDate,
		IsPaid:      isPaid,
		PaymentDate: current.PaymentDate,
	}
	if err := c.feeService.UpdateFee(ctx, fee); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// MarkFeePaid handles POST /fees/:id/pay.
func (c *FeeController) MarkFeePaid(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	fee, err := c.feeService.MarkFeePaid(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// DeleteFee handles DELETE /fees/:id.
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.feeService.DeleteFee(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Fee deleted"}))
}
