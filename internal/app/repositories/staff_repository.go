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

// IStaffRepository defines database operations for staff members.
type IStaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	List(ctx context.Context, filter StaffFilter, page, size int) ([]*models.Staff, int64, error)
	Update(ctx context.Context, staff *models.Staff) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// StaffFilter narrows staff list queries.
type StaffFilter struct {
	DepartmentID  *int64
	DesignationID *int64
	StaffType     *string
	IsActive      *bool
	Search        string
	Sort          string
}

var staffSortKeys = map[string]string{
	"fullName": "full_name",
	"id":       "id",
}

const defaultStaffOrder = "full_name ASC"

// StaffRepository handles database operations for staff members.
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

const staffColumns = "id, user_id, full_name, staff_type, designation_id, department_id, email, phone, date_joined, is_active, created_at"

// Create inserts a new staff profile.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (user_id, full_name, staff_type, designation_id, department_id, email, phone, date_joined, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		staff.UserID, staff.FullName, staff.StaffType, staff.DesignationID,
		staff.DepartmentID, staff.Email, staff.Phone, staff.DateJoined, staff.IsActive,
	).Scan(&staff.ID, &staff.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStaffAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced department, designation or user does not exist")
		}
		return fmt.Errorf("error creating staff: %w", err)
	}

	return nil
}

// GetByID retrieves a staff member by ID.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.FullName,
		&staff.StaffType,
		&staff.DesignationID,
		&staff.DepartmentID,
		&staff.Email,
		&staff.Phone,
		&staff.DateJoined,
		&staff.IsActive,
		&staff.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff: %w", err)
	}

	return &staff, nil
}

// List retrieves staff members with filtering and pagination.
func (r *StaffRepository) List(ctx context.Context, filter StaffFilter, page, size int) ([]*models.Staff, int64, error) {
	query := psql.Select(
		"id", "user_id", "full_name", "staff_type", "designation_id",
		"department_id", "email", "phone", "date_joined", "is_active", "created_at",
	).From("staff")

	if filter.DepartmentID != nil {
		query = query.Where(squirrel.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.DesignationID != nil {
		query = query.Where(squirrel.Eq{"designation_id": *filter.DesignationID})
	}
	if filter.StaffType != nil {
		query = query.Where(squirrel.Eq{"staff_type": *filter.StaffType})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, staffSortKeys, defaultStaffOrder))

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

	var members []*models.Staff
	var total int64
	for rows.Next() {
		var s models.Staff
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.FullName,
			&s.StaffType,
			&s.DesignationID,
			&s.DepartmentID,
			&s.Email,
			&s.Phone,
			&s.DateJoined,
			&s.IsActive,
			&s.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Update updates an existing staff profile.
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	query := `
		UPDATE staff
		SET full_name = $1, staff_type = $2, designation_id = $3, department_id = $4,
		    email = $5, phone = $6, date_joined = $7, is_active = $8
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		staff.FullName, staff.StaffType, staff.DesignationID, staff.DepartmentID,
		staff.Email, staff.Phone, staff.DateJoined, staff.IsActive, staff.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStaffAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("referenced department or designation does not exist")
		}
		return fmt.Errorf("error updating staff: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// Deactivate marks a staff member inactive without removing the row.
func (r *StaffRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE staff SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating staff: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}

// Delete deletes a staff member by ID.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting staff: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}
	return nil
}
