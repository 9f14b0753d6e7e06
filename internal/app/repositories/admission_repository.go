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

// IAdmissionRepository defines database operations for admissions.
type IAdmissionRepository interface {
	Create(ctx context.Context, admission *models.Admission) error
	GetByID(ctx context.Context, id int64) (*models.Admission, error)
	List(ctx context.Context, filter AdmissionFilter, page, size int) ([]*models.Admission, int64, error)
	Update(ctx context.Context, admission *models.Admission) error
	Delete(ctx context.Context, id int64) error
}

// AdmissionFilter narrows admission list queries.
type AdmissionFilter struct {
	StudentID *int64
	ProgramID *int64
	Status    *string
	Search    string
	Sort      string
}

var admissionSortKeys = map[string]string{
	"id":            "a.id",
	"admissionDate": "a.admission_date",
}

const defaultAdmissionOrder = "a.admission_date DESC"

// AdmissionRepository handles database operations for admissions.
type AdmissionRepository struct {
	db *pgxpool.Pool
}

// NewAdmissionRepository creates a new admission repository.
func NewAdmissionRepository(db *pgxpool.Pool) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// Create inserts a new admission. Each student has at most one admission.
func (r *AdmissionRepository) Create(ctx context.Context, admission *models.Admission) error {
	query := `
		INSERT INTO admissions (student_id, program_id, admission_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		admission.StudentID, admission.ProgramID, admission.AdmissionDate, admission.Status,
	).Scan(&admission.ID, &admission.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAdmissionAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced student or program does not exist")
		}
		return fmt.Errorf("error creating admission: %w", err)
	}

	return nil
}

// GetByID retrieves an admission by ID with student and program names joined.
func (r *AdmissionRepository) GetByID(ctx context.Context, id int64) (*models.Admission, error) {
	query := `
		SELECT a.id, a.student_id, a.program_id, a.admission_date, a.status, a.created_at,
		       s.full_name, p.name
		FROM admissions a
		JOIN students s ON s.id = a.student_id
		JOIN programs p ON p.id = a.program_id
		WHERE a.id = $1
	`

	var a models.Admission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.StudentID,
		&a.ProgramID,
		&a.AdmissionDate,
		&a.Status,
		&a.CreatedAt,
		&a.StudentName,
		&a.ProgramName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdmissionNotFound
		}
		return nil, fmt.Errorf("error retrieving admission: %w", err)
	}

	return &a, nil
}

// List retrieves admissions with filtering and pagination.
func (r *AdmissionRepository) List(ctx context.Context, filter AdmissionFilter, page, size int) ([]*models.Admission, int64, error) {
	query := psql.Select(
		"a.id", "a.student_id", "a.program_id", "a.admission_date", "a.status", "a.created_at",
		"s.full_name", "p.name",
	).From("admissions a").
		Join("students s ON s.id = a.student_id").
		Join("programs p ON p.id = a.program_id")

	if filter.StudentID != nil {
		query = query.Where(squirrel.Eq{"a.student_id": *filter.StudentID})
	}
	if filter.ProgramID != nil {
		query = query.Where(squirrel.Eq{"a.program_id": *filter.ProgramID})
	}
	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"s.full_name": pattern},
			squirrel.ILike{"p.name": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, admissionSortKeys, defaultAdmissionOrder))

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

	var admissions []*models.Admission
	var total int64
	for rows.Next() {
		var a models.Admission
		if err := rows.Scan(
			&a.ID,
			&a.StudentID,
			&a.ProgramID,
			&a.AdmissionDate,
			&a.Status,
			&a.CreatedAt,
			&a.StudentName,
			&a.ProgramName,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		admissions = append(admissions, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return admissions, total, nil
}

// Update updates an existing admission.
func (r *AdmissionRepository) Update(ctx context.Context, admission *models.Admission) error {
	query := `
		UPDATE admissions
		SET program_id = $1, admission_date = $2, status = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		admission.ProgramID, admission.AdmissionDate, admission.Status, admission.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error updating admission: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}

	return nil
}

// Delete deletes an admission by ID.
func (r *AdmissionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM admissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting admission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAdmissionNotFound
	}
	return nil
}
