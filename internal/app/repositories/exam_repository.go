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

// IExamRepository defines database operations for exams.
type IExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
	List(ctx context.Context, filter ExamFilter, page, size int) ([]*models.Exam, int64, error)
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id int64) error
}

// ExamFilter narrows exam list queries.
type ExamFilter struct {
	CourseID *int64
	ExamType *string
	Date     *time.Time
	Search   string
	Sort     string
}

// ExamRepository handles database operations for exams.
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository.
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db}
}

// Create inserts a new exam.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (course_id, exam_type, date, total_marks)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		exam.CourseID, exam.ExamType, exam.Date, exam.TotalMarks,
	).Scan(&exam.ID, &exam.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// GetByID retrieves an exam by ID with the course title joined.
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := `
		SELECT e.id, e.course_id, e.exam_type, e.date, e.total_marks, e.created_at, c.title
		FROM exams e
		JOIN courses c ON c.id = e.course_id
		WHERE e.id = $1
	`

	var exam models.Exam
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exam.ID,
		&exam.CourseID,
		&exam.ExamType,
		&exam.Date,
		&exam.TotalMarks,
		&exam.CreatedAt,
		&exam.CourseTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error retrieving exam: %w", err)
	}

	return &exam, nil
}

// List retrieves exams with filtering and pagination.
func (r *ExamRepository) List(ctx context.Context, filter ExamFilter, page, size int) ([]*models.Exam, int64, error) {
	query := psql.Select(
		"e.id", "e.course_id", "e.exam_type", "e.date", "e.total_marks", "e.created_at", "c.title",
	).From("exams e").
		Join("courses c ON c.id = e.course_id")

	if filter.CourseID != nil {
		query = query.Where(squirrel.Eq{"e.course_id": *filter.CourseID})
	}
	if filter.ExamType != nil {
		query = query.Where(squirrel.Eq{"e.exam_type": *filter.ExamType})
	}
	if filter.Date != nil {
		query = query.Where(squirrel.Eq{"e.date": *filter.Date})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"c.title": pattern},
			squirrel.ILike{"c.code": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, map[string]string{
		"date":     "e.date",
		"examType": "e.exam_type",
	}, "e.date DESC"))

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

	var exams []*models.Exam
	var total int64
	for rows.Next() {
		var exam models.Exam
		if err := rows.Scan(
			&exam.ID,
			&exam.CourseID,
			&exam.ExamType,
			&exam.Date,
			&exam.TotalMarks,
			&exam.CreatedAt,
			&exam.CourseTitle,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		exams = append(exams, &exam)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return exams, total, nil
}

// Update updates an existing exam.
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exams
		SET course_id = $1, exam_type = $2, date = $3, total_marks = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		exam.CourseID, exam.ExamType, exam.Date, exam.TotalMarks, exam.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating exam: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// Delete deletes an exam by ID.
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}
	return nil
}
