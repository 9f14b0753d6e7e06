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

// IGradeRepository defines database operations for grades.
type IGradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) error
	GetByID(ctx context.Context, id int64) (*models.Grade, error)
	List(ctx context.Context, filter GradeFilter, page, size int) ([]*models.Grade, int64, error)
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id int64) error
}

// GradeFilter narrows grade list queries.
type GradeFilter struct {
	StudentID *int64
	ExamID    *int64
	Search    string
	Sort      string
}

// GradeRepository handles database operations for grades.
type GradeRepository struct {
	db *pgxpool.Pool
}

// NewGradeRepository creates a new grade repository.
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{db: db}
}

// Create inserts a new grade.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, exam_id, obtained_marks)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		grade.StudentID, grade.ExamID, grade.ObtainedMarks,
	).Scan(&grade.ID, &grade.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced student or exam does not exist")
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByID retrieves a grade by ID with student name and course title joined.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := `
		SELECT g.id, g.student_id, g.exam_id, g.obtained_marks, g.created_at,
		       s.full_name, c.title
		FROM grades g
		JOIN students s ON s.id = g.student_id
		JOIN exams e ON e.id = g.exam_id
		JOIN courses c ON c.id = e.course_id
		WHERE g.id = $1
	`

	var grade models.Grade
	err := r.db.QueryRow(ctx, query, id).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.ExamID,
		&grade.ObtainedMarks,
		&grade.CreatedAt,
		&grade.StudentName,
		&grade.CourseTitle,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return &grade, nil
}

// List retrieves grades with filtering and pagination.
func (r *GradeRepository) List(ctx context.Context, filter GradeFilter, page, size int) ([]*models.Grade, int64, error) {
	query := psql.Select(
		"g.id", "g.student_id", "g.exam_id", "g.obtained_marks", "g.created_at",
		"s.full_name", "c.title",
	).From("grades g").
		Join("students s ON s.id = g.student_id").
		Join("exams e ON e.id = g.exam_id").
		Join("courses c ON c.id = e.course_id")

	if filter.StudentID != nil {
		query = query.Where(squirrel.Eq{"g.student_id": *filter.StudentID})
	}
	if filter.ExamID != nil {
		query = query.Where(squirrel.Eq{"g.exam_id": *filter.ExamID})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"s.full_name": pattern},
			squirrel.ILike{"c.title": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, map[string]string{
		"obtainedMarks": "g.obtained_marks",
	}, "g.id DESC"))

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

	var grades []*models.Grade
	var total int64
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.ExamID,
			&grade.ObtainedMarks,
			&grade.CreatedAt,
			&grade.StudentName,
			&grade.CourseTitle,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		grades = append(grades, &grade)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return grades, total, nil
}

// Update updates an existing grade.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	query := `
		UPDATE grades
		SET student_id = $1, exam_id = $2, obtained_marks = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		grade.StudentID, grade.ExamID, grade.ObtainedMarks, grade.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced student or exam does not exist")
		}
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete deletes a grade by ID.
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM grades WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}
	return nil
}
