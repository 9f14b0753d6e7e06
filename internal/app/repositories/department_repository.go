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

// IDepartmentRepository defines database operations for departments.
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	List(ctx context.Context, filter DepartmentFilter, page, size int) ([]*models.Department, int64, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentFilter narrows department list queries.
type DepartmentFilter struct {
	Name   *string
	Code   *string
	Search string
	Sort   string
}

// DepartmentRepository handles database operations for departments.
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

const departmentColumns = "id, name, code, description, hod_id, created_at"

// Create inserts a new department.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, code, description, hod_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		department.Name, department.Code, department.Description, department.HodID,
	).Scan(&department.ID, &department.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.Code,
		&department.Description,
		&department.HodID,
		&department.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// List retrieves departments with filtering and pagination.
func (r *DepartmentRepository) List(ctx context.Context, filter DepartmentFilter, page, size int) ([]*models.Department, int64, error) {
	query := psql.Select("id", "name", "code", "description", "hod_id", "created_at").
		From("departments")

	if filter.Name != nil {
		query = query.Where(squirrel.Eq{"name": *filter.Name})
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

	query = query.OrderBy(orderClause(filter.Sort, map[string]string{
		"name": "name",
		"code": "code",
	}, "name ASC"))

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

	var departments []*models.Department
	var total int64
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Code,
			&department.Description,
			&department.HodID,
			&department.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		departments = append(departments, &department)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// Update updates an existing department.
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = $1, code = $2, description = $3, hod_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.Name, department.Code, department.Description, department.HodID, department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID. Departments still referenced by
// programs cannot be deleted.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	var hasPrograms bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM programs WHERE department_id = $1)`, id).Scan(&hasPrograms)
	if err != nil {
		return fmt.Errorf("error checking related programs: %w", err)
	}
	if hasPrograms {
		return apperrors.ErrDepartmentHasRelations
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
