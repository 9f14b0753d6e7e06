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

// NotificationController handles notification endpoints. Student-role
// callers only see notifications addressed to them.
type NotificationController struct {
	notificationService services.NotificationService
	studentService      services.StudentService
}

// NewNotificationController creates a new NotificationController.
func NewNotificationController(notificationService services.NotificationService, studentService services.StudentService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		studentService:      studentService,
	}
}

func (c *NotificationController) callerStudentID(ctx *gin.Context) (int64, bool, error) {
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

func studentOwnsNotification(n *models.Notification, studentID int64) bool {
	return n.RecipientStudentID != nil && *n.RecipientStudentID == studentID
}

// CreateNotification handles POST /notifications.
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notification := &models.Notification{
		RecipientStudentID: req.RecipientStudentID,
		RecipientStaffID:   req.RecipientStaffID,
		NotifType:          req.NotifType,
		Title:              req.Title,
		Message:            req.Message,
	}
	if err := c.notificationService.CreateNotification(ctx, notification); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(notification))
}

// GetNotificationByID handles GET /notifications/:id.
func (c *NotificationController) GetNotificationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	notification, err := c.notificationService.GetNotificationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent && !studentOwnsNotification(notification, ownID) {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(notification))
}

// ListNotifications handles GET /notifications.
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	recipientStudentID, err := helpers.OptionalInt64Query(ctx, "recipientStudentId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	recipientStaffID, err := helpers.OptionalInt64Query(ctx, "recipientStaffId")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	read, err := helpers.OptionalBoolQuery(ctx, "read")
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	filter := repositories.NotificationFilter{
		RecipientStudentID: recipientStudentID,
		RecipientStaffID:   recipientStaffID,
		NotifType:          helpers.OptionalStringQuery(ctx, "notifType"),
		Read:               read,
		Search:             ctx.Query("search"),
		Sort:               ctx.Query("sort"),
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent {
		filter.RecipientStudentID = &ownID
		filter.RecipientStaffID = nil
	}

	notifications, total, err := c.notificationService.ListNotifications(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(paginatedResponse(notifications, total, page, size)))
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (c *NotificationController) MarkNotificationRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	notification, err := c.notificationService.GetNotificationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if ownID, isStudent, err := c.callerStudentID(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	} else if isStudent && !studentOwnsNotification(notification, ownID) {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	if err := c.notificationService.MarkNotificationRead(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Notification marked as read"}))
}

// DeleteNotification handles DELETE /notifications/:id.
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		middleware.HandleValidationError(ctx, errInvalidID)
		return
	}

	if err := c.notificationService.DeleteNotification(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Notification deleted"}))
}
