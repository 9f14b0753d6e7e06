package services

import (
	"context"
	"fmt"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// NotificationService defines the interface for notification operations.
type NotificationService interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	GetNotificationByID(ctx context.Context, id int64) (*models.Notification, error)
	ListNotifications(ctx context.Context, filter repositories.NotificationFilter, page, size int) ([]*models.Notification, int64, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	DeleteNotification(ctx context.Context, id int64) error
}

type notificationServiceImpl struct {
	notificationRepo repositories.INotificationRepository
}

// NewNotificationService creates a new notification service instance.
func NewNotificationService(notificationRepo repositories.INotificationRepository) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
	}
}

// CreateNotification inserts a manually authored notification. Exactly one
// recipient must be set.
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, notification *models.Notification) error {
	hasStudent := notification.RecipientStudentID != nil
	hasStaff := notification.RecipientStaffID != nil
	if hasStudent == hasStaff {
		return fmt.Errorf("%w: exactly one of recipientStudentId and recipientStaffId must be set",
			apperrors.ErrValidationFailed)
	}
	return s.notificationRepo.Create(ctx, notification)
}

func (s *notificationServiceImpl) GetNotificationByID(ctx context.Context, id int64) (*models.Notification, error) {
	return s.notificationRepo.GetByID(ctx, id)
}

func (s *notificationServiceImpl) ListNotifications(ctx context.Context, filter repositories.NotificationFilter, page, size int) ([]*models.Notification, int64, error) {
	return s.notificationRepo.List(ctx, filter, page, size)
}

func (s *notificationServiceImpl) MarkNotificationRead(ctx context.Context, id int64) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, id int64) error {
	return s.notificationRepo.Delete(ctx, id)
}
