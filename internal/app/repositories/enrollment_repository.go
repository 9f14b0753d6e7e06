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

// IEnrollmentRepository defines database operations for enrollments.
type IEnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	List(ctx context.Context, filter EnrollmentFilter, page, size int) ([]*models.Enrollment, int64, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentFilter narrows enrollment list queries.
type EnrollmentFilter struct {
	StudentID *int64
	CourseID  *int64
	Semester  *int
	Year      *int
	Search    string
	Sort      string
}

var enrollmentSortKeys = map[string]string{
	"id":       "e.id",
	"year":     "e.year",
	"semester": "e.semester",
}

const defaultEnrollmentOrder = "e.date_enrolled DESC"

// EnrollmentRepository handles database operations for enrollments.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository.
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts a new enrollment. The (student, course, semester, year)
// combination is unique.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id, semester, year, date_enrolled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.Semester,
		enrollment.Year, enrollment.DateEnrolled,
	).Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateEnrollment
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced student or course does not exist")
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID with student name and course code joined.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.semester, e.year, e.date_enrolled, e.created_at,
		       s.full_name, c.code
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		JOIN courses c ON c.id = e.course_id
		WHERE e.id = $1
	`

	var e models.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.StudentID,
		&e.CourseID,
		&e.Semester,
		&e.Year,
		&e.DateEnrolled,
		&e.CreatedAt,
		&e.StudentName,
		&e.CourseCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &e, nil
}

// List retrieves enrollments with filtering and pagination.
func (r *EnrollmentRepository) List(ctx context.Context, filter EnrollmentFilter, page, size int) ([]*models.Enrollment, int64, error) {
	query := psql.Select(
		"e.id", "e.student_id", "e.course_id", "e.semester", "e.year",
		"e.date_enrolled", "e.created_at", "s.full_name", "c.code",
	).From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Join("courses c ON c.id = e.course_id")

	if filter.StudentID != nil {
		query = query.Where(squirrel.Eq{"e.student_id": *filter.StudentID})
	}
	if filter.CourseID != nil {
		query = query.Where(squirrel.Eq{"e.course_id": *filter.CourseID})
	}
	if filter.Semester != nil {
		query = query.Where(squirrel.Eq{"e.semester": *filter.Semester})
	}
	if filter.Year != nil {
		query = query.Where(squirrel.Eq{"e.year": *filter.Year})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"s.full_name": pattern},
			squirrel.ILike{"c.code": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, enrollmentSortKeys, defaultEnrollmentOrder))

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

	var enrollments []*models.Enrollment
	var total int64
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(
			&e.ID,
			&e.StudentID,
			&e.CourseID,
			&e.Semester,
			&e.Year,
			&e.DateEnrolled,
			&e.CreatedAt,
			&e.StudentName,
			&e.CourseCode,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		enrollments = append(enrollments, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return enrollments, total, nil
}

// Update updates an existing enrollment.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		UPDATE enrollments
		SET student_id = $1, course_id = $2, semester = $3, year = $4, date_enrolled = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		enrollment.StudentID, enrollment.CourseID, enrollment.Semester,
		enrollment.Year, enrollment.DateEnrolled, enrollment.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateEnrollment
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced student or course does not exist")
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// Delete deletes an enrollment by ID.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
