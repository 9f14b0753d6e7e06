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

// IDesignationRepository defines database operations for designations.
type IDesignationRepository interface {
	Create(ctx context.Context, designation *models.Designation) error
	GetByID(ctx context.Context, id int64) (*models.Designation, error)
	List(ctx context.Context, filter DesignationFilter, page, size int) ([]*models.Designation, int64, error)
	Update(ctx context.Context, designation *models.Designation) error
	Delete(ctx context.Context, id int64) error
}

// DesignationFilter narrows designation list queries.
type DesignationFilter struct {
	Title  *string
	Search string
	Sort   string
}

// DesignationRepository handles database operations for designations.
type DesignationRepository struct {
	db *pgxpool.Pool
}

// NewDesignationRepository creates a new designation repository.
func NewDesignationRepository(db *pgxpool.Pool) *DesignationRepository {
	return &DesignationRepository{db: db}
}

// Create inserts a new designation.
func (r *DesignationRepository) Create(ctx context.Context, designation *models.Designation) error {
	query := `INSERT INTO designations (title) VALUES ($1) RETURNING id, created_at`

	if err := r.db.QueryRow(ctx, query, designation.Title).Scan(&designation.ID, &designation.CreatedAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDesignationAlreadyExists
		}
		return fmt.Errorf("error creating designation: %w", err)
	}
	return nil
}

// GetByID retrieves a designation by ID.
func (r *DesignationRepository) GetByID(ctx context.Context, id int64) (*models.Designation, error) {
	var designation models.Designation
	err := r.db.QueryRow(ctx,
		`SELECT id, title, created_at FROM designations WHERE id = $1`, id).Scan(
		&designation.ID, &designation.Title, &designation.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDesignationNotFound
		}
		return nil, fmt.Errorf("error retrieving designation: %w", err)
	}
	return &designation, nil
}

// List retrieves designations ordered by title.
func (r *DesignationRepository) List(ctx context.Context, filter DesignationFilter, page, size int) ([]*models.Designation, int64, error) {
	query := psql.Select("id", "title", "created_at").From("designations")

	if filter.Title != nil {
		query = query.Where(squirrel.Eq{"title": *filter.Title})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"title": searchPattern(filter.Search)})
	}

	query = query.OrderBy(orderClause(filter.Sort, map[string]string{
		"title": "title",
	}, "title ASC"))

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

	var designations []*models.Designation
	var total int64
	for rows.Next() {
		var designation models.Designation
		if err := rows.Scan(&designation.ID, &designation.Title, &designation.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		designations = append(designations, &designation)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return designations, total, nil
}

// Update updates an existing designation.
func (r *DesignationRepository) Update(ctx context.Context, designation *models.Designation) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE designations SET title = $1 WHERE id = $2`, designation.Title, designation.ID)
	if err != nil {
		return fmt.Errorf("error updating designation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDesignationNotFound
	}
	return nil
}

// Delete deletes a designation by ID.
func (r *DesignationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting designation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDesignationNotFound
	}
	return nil
}
