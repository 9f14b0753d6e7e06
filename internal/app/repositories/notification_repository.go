package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
	"github.com/kaanb/campuscore/internal/pkg/dberrors"
)

// INotificationRepository defines database operations for notifications.
type INotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	CreateBatch(ctx context.Context, notifications []*models.Notification) error
	GetByID(ctx context.Context, id int64) (*models.Notification, error)
	List(ctx context.Context, filter NotificationFilter, page, size int) ([]*models.Notification, int64, error)
	MarkRead(ctx context.Context, id int64) error
	ResolveUnreadFeeNotifications(ctx context.Context, studentID int64) error
	Delete(ctx context.Context, id int64) error
}

// NotificationFilter narrows notification list queries.
type NotificationFilter struct {
	RecipientStudentID *int64
	RecipientStaffID   *int64
	NotifType          *string
	Read               *bool
	Search             string
	Sort               string
}

// NotificationRepository handles database operations for notifications.
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = "id, recipient_student_id, recipient_staff_id, notif_type, title, message, created_at, read, auto_resolved"

const insertNotificationQuery = `
	INSERT INTO notifications (recipient_student_id, recipient_staff_id, notif_type, title, message, read, auto_resolved)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at
`

// Create inserts a single notification.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	err := r.db.QueryRow(ctx, insertNotificationQuery,
		n.RecipientStudentID, n.RecipientStaffID, n.NotifType, n.Title, n.Message, n.Read, n.AutoResolved,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("notification recipient does not exist")
		}
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// CreateBatch inserts many notifications in one transaction. Used by the
// exam fan-out which can address a whole program at once.
func (r *NotificationRepository) CreateBatch(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, n := range notifications {
		err := tx.QueryRow(ctx, insertNotificationQuery,
			n.RecipientStudentID, n.RecipientStaffID, n.NotifType, n.Title, n.Message, n.Read, n.AutoResolved,
		).Scan(&n.ID, &n.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating notification: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by ID.
func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	var n models.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID,
		&n.RecipientStudentID,
		&n.RecipientStaffID,
		&n.NotifType,
		&n.Title,
		&n.Message,
		&n.CreatedAt,
		&n.Read,
		&n.AutoResolved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error retrieving notification: %w", err)
	}

	return &n, nil
}

// List retrieves notifications with filtering and pagination.
func (r *NotificationRepository) List(ctx context.Context, filter NotificationFilter, page, size int) ([]*models.Notification, int64, error) {
	query := psql.Select(
		"id", "recipient_student_id", "recipient_staff_id", "notif_type",
		"title", "message", "created_at", "read", "auto_resolved",
	).From("notifications")

	if filter.RecipientStudentID != nil {
		query = query.Where(squirrel.Eq{"recipient_student_id": *filter.RecipientStudentID})
	}
	if filter.RecipientStaffID != nil {
		query = query.Where(squirrel.Eq{"recipient_staff_id": *filter.RecipientStaffID})
	}
	if filter.NotifType != nil {
		query = query.Where(squirrel.Eq{"notif_type": *filter.NotifType})
	}
	if filter.Read != nil {
		query = query.Where(squirrel.Eq{"read": *filter.Read})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"message": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, map[string]string{
		"createdAt": "created_at",
	}, "created_at DESC"))

	offset := (page - 1) * size
	query = query.Column("COUNT(*) OVER()").Limit(uint64(size)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	var total int64
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID,
			&n.RecipientStudentID,
			&n.RecipientStaffID,
			&n.NotifType,
			&n.Title,
			&n.Message,
			&n.CreatedAt,
			&n.Read,
			&n.AutoResolved,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// MarkRead flags a notification as read.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// ResolveUnreadFeeNotifications marks a student's unread Fee notifications
// as read and auto-resolved. Runs when a fee is paid so stale reminders do
// not linger.
func (r *NotificationRepository) ResolveUnreadFeeNotifications(ctx context.Context, studentID int64) error {
	query := `
		UPDATE notifications
		SET read = TRUE, auto_resolved = TRUE
		WHERE recipient_student_id = $1 AND notif_type = $2 AND NOT read
	`

	if _, err := r.db.Exec(ctx, query, studentID, models.NotifTypeFee); err != nil {
		return fmt.Errorf("error resolving fee notifications: %w", err)
	}
	return nil
}

// Delete deletes a notification by ID.
func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}
