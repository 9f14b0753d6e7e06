package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
	"github.com/kaanb/campuscore/internal/pkg/dberrors"
)

// IAttendanceRepository defines database operations for attendance records.
type IAttendanceRepository interface {
	Create(ctx context.Context, record *models.Attendance) error
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter, page, size int) ([]*models.Attendance, int64, error)
	Update(ctx context.Context, record *models.Attendance) error
	Delete(ctx context.Context, id int64) error
}

// AttendanceFilter narrows attendance list queries.
type AttendanceFilter struct {
	StudentID *int64
	CourseID  *int64
	Status    *string
	Date      *time.Time
	Sort      string
}

// AttendanceRepository handles database operations for attendance records.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository.
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Create inserts a new attendance mark. The (student, course, date)
// combination is unique.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, course_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.CourseID, record.Date, record.Status,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateAttendance
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced student or course does not exist")
		}
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetByID retrieves an attendance record by ID with names joined.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.course_id, a.date, a.status, a.created_at,
		       s.full_name, c.code
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		JOIN courses c ON c.id = a.course_id
		WHERE a.id = $1
	`

	var rec models.Attendance
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.StudentID,
		&rec.CourseID,
		&rec.Date,
		&rec.Status,
		&rec.CreatedAt,
		&rec.StudentName,
		&rec.CourseCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance record: %w", err)
	}

	return &rec, nil
}

// List retrieves attendance records with filtering and pagination.
func (r *AttendanceRepository) List(ctx context.Context, filter AttendanceFilter, page, size int) ([]*models.Attendance, int64, error) {
	query := psql.Select(
		"a.id", "a.student_id", "a.course_id", "a.date", "a.status", "a.created_at",
		"s.full_name", "c.code",
	).From("attendance a").
		Join("students s ON s.id = a.student_id").
		Join("courses c ON c.id = a.course_id")

	if filter.StudentID != nil {
		query = query.Where(squirrel.Eq{"a.student_id": *filter.StudentID})
	}
	if filter.CourseID != nil {
		query = query.Where(squirrel.Eq{"a.course_id": *filter.CourseID})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if filter.Date != nil {
		query = query.Where(squirrel.Eq{"a.date": *filter.Date})
	}

	query = query.OrderBy(orderClause(filter.Sort, map[string]string{
		"date":   "a.date",
		"status": "a.status",
	}, "a.date DESC"))

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

	var records []*models.Attendance
	var total int64
	for rows.Next() {
		var rec models.Attendance
		if err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.CourseID,
			&rec.Date,
			&rec.Status,
			&rec.CreatedAt,
			&rec.StudentName,
			&rec.CourseCode,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update updates an existing attendance record.
func (r *AttendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	query := `
		UPDATE attendance
		SET student_id = $1, course_id = $2, date = $3, status = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		record.StudentID, record.CourseID, record.Date, record.Status, record.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateAttendance
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced student or course does not exist")
		}
		return fmt.Errorf("error updating attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// Delete deletes an attendance record by ID.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting attendance record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return nil
}
