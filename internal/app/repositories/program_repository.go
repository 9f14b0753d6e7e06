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

// IProgramRepository defines database operations for programs.
type IProgramRepository interface {
	Create(ctx context.Context, program *models.Program) error
	GetByID(ctx context.Context, id int64) (*models.Program, error)
	List(ctx context.Context, filter ProgramFilter, page, size int) ([]*models.Program, int64, error)
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id int64) error
}

// ProgramFilter narrows program list queries.
type ProgramFilter struct {
	DepartmentID *int64
	ProgramType  *string
	Code         *string
	Search       string
	Sort         string
}

var programSortKeys = map[string]string{
	"name":          "name",
	"programNumber": "program_number",
}

const defaultProgramOrder = "program_number ASC"

// ProgramRepository handles database operations for programs.
type ProgramRepository struct {
	db *pgxpool.Pool
}

// NewProgramRepository creates a new program repository.
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{db: db}
}

const programColumns = "id, program_number, name, code, program_type, department_id, duration_years, description, created_at"

// Create inserts a new program.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (program_number, name, code, program_type, department_id, duration_years, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		program.ProgramNumber, program.Name, program.Code, program.ProgramType,
		program.DepartmentID, program.DurationYears, program.Description,
	).Scan(&program.ID, &program.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// GetByID retrieves a program by ID.
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs WHERE id = $1`

	var program models.Program
	err := r.db.QueryRow(ctx, query, id).Scan(
		&program.ID,
		&program.ProgramNumber,
		&program.Name,
		&program.Code,
		&program.ProgramType,
		&program.DepartmentID,
		&program.DurationYears,
		&program.Description,
		&program.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	return &program, nil
}

// List retrieves programs with filtering and pagination. Default order is
// the catalog program number.
func (r *ProgramRepository) List(ctx context.Context, filter ProgramFilter, page, size int) ([]*models.Program, int64, error) {
	query := psql.Select("id", "program_number", "name", "code", "program_type",
		"department_id", "duration_years", "description", "created_at").
		From("programs")

	if filter.DepartmentID != nil {
		query = query.Where(squirrel.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.ProgramType != nil {
		query = query.Where(squirrel.Eq{"program_type": *filter.ProgramType})
	}
	if filter.Code != nil {
		query = query.Where(squirrel.Eq{"code": *filter.Code})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, programSortKeys, defaultProgramOrder))

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

	var programs []*models.Program
	var total int64
	for rows.Next() {
		var program models.Program
		if err := rows.Scan(
			&program.ID,
			&program.ProgramNumber,
			&program.Name,
			&program.Code,
			&program.ProgramType,
			&program.DepartmentID,
			&program.DurationYears,
			&program.Description,
			&program.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		programs = append(programs, &program)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return programs, total, nil
}

// Update updates an existing program.
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	query := `
		UPDATE programs
		SET program_number = $1, name = $2, code = $3, program_type = $4,
		    department_id = $5, duration_years = $6, description = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		program.ProgramNumber, program.Name, program.Code, program.ProgramType,
		program.DepartmentID, program.DurationYears, program.Description, program.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrProgramAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Delete deletes a program by ID. Related courses and students cascade at
// the schema level, mirroring the source data model.
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}
	return nil
}
