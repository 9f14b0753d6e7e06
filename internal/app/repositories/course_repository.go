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

// ICourseRepository defines database operations for courses.
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter CourseFilter, page, size int) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	BulkCreate(ctx context.Context, courses []*models.Course) error
	BulkUpdate(ctx context.Context, courses []*models.Course) ([]*models.Course, error)
}

// CourseFilter narrows course list queries.
type CourseFilter struct {
	ProgramID *int64
	Semester  *int
	Code      *string
	Search    string
	Sort      string
}

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = "id, code, title, credit_hours, semester, program_id, created_at"

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (code, title, credit_hours, semester, program_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Title, course.CreditHours, course.Semester, course.ProgramID,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&course.CreditHours,
		&course.Semester,
		&course.ProgramID,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List retrieves courses with filtering and pagination.
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter, page, size int) ([]*models.Course, int64, error) {
	query := psql.Select("id", "code", "title", "credit_hours", "semester", "program_id", "created_at").
		From("courses")

	if filter.ProgramID != nil {
		query = query.Where(squirrel.Eq{"program_id": *filter.ProgramID})
	}
	if filter.Semester != nil {
		query = query.Where(squirrel.Eq{"semester": *filter.Semester})
	}
	if filter.Code != nil {
		query = query.Where(squirrel.Eq{"code": *filter.Code})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"code": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, map[string]string{
		"title": "title",
		"code":  "code",
	}, "code ASC"))

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

	var courses []*models.Course
	var total int64
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Code,
			&course.Title,
			&course.CreditHours,
			&course.Semester,
			&course.ProgramID,
			&course.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}

// Update updates an existing course.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, title = $2, credit_hours = $3, semester = $4, program_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Title, course.CreditHours, course.Semester, course.ProgramID, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// BulkCreate inserts all courses in a single transaction. Any failure rolls
// the whole batch back.
func (r *CourseRepository) BulkCreate(ctx context.Context, courses []*models.Course) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO courses (code, title, credit_hours, semester, program_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	for _, course := range courses {
		err := tx.QueryRow(ctx, query,
			course.Code, course.Title, course.CreditHours, course.Semester, course.ProgramID,
		).Scan(&course.ID, &course.CreatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrCourseAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrProgramNotFound
			}
			return fmt.Errorf("error creating course %q: %w", course.Code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// BulkUpdate applies partial updates in a single transaction and returns the
// courses that were actually updated. Unknown IDs are skipped, matching the
// bulk endpoint contract.
func (r *CourseRepository) BulkUpdate(ctx context.Context, courses []*models.Course) ([]*models.Course, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE courses
		SET code = $1, title = $2, credit_hours = $3, semester = $4, program_id = $5
		WHERE id = $6
	`

	var updated []*models.Course
	for _, course := range courses {
		cmdTag, err := tx.Exec(ctx, query,
			course.Code, course.Title, course.CreditHours, course.Semester, course.ProgramID, course.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return nil, apperrors.ErrCourseAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return nil, apperrors.ErrProgramNotFound
			}
			return nil, fmt.Errorf("error updating course %d: %w", course.ID, err)
		}
		if cmdTag.RowsAffected() > 0 {
			updated = append(updated, course)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}
