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

// IFeeRepository defines database operations for fees.
type IFeeRepository interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	List(ctx context.Context, filter FeeFilter, page, size int) ([]*models.Fee, int64, error)
	Update(ctx context.Context, fee *models.Fee) error
	MarkPaid(ctx context.Context, id int64, paymentDate time.Time) (*models.Fee, error)
	Delete(ctx context.Context, id int64) error
}

// FeeFilter narrows fee list queries.
type FeeFilter struct {
	StudentID *int64
	IsPaid    *bool
	Search    string
	Sort      string
}

var feeSortKeys = map[string]string{
	"paymentDate": "f.payment_date",
	"amount":      "f.amount",
}

const defaultFeeOrder = "f.due_date DESC"

// FeeRepository handles database operations for fees.
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository.
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{db: db}
}

// Create inserts a new fee.
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	query := `
		INSERT INTO fees (student_id, amount, due_date, is_paid, payment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		fee.StudentID, fee.Amount, fee.DueDate, fee.IsPaid, fee.PaymentDate,
	).Scan(&fee.ID, &fee.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error creating fee: %w", err)
	}

	return nil
}

// GetByID retrieves a fee by ID with the student name joined.
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	query := `
		SELECT f.id, f.student_id, f.amount, f.due_date, f.is_paid, f.payment_date, f.created_at,
		       s.full_name
		FROM fees f
		JOIN students s ON s.id = f.student_id
		WHERE f.id = $1
	`

	var fee models.Fee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fee.ID,
		&fee.StudentID,
		&fee.Amount,
		&fee.DueDate,
		&fee.IsPaid,
		&fee.PaymentDate,
		&fee.CreatedAt,
		&fee.StudentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return &fee, nil
}

// List retrieves fees with filtering and pagination.
func (r *FeeRepository) List(ctx context.Context, filter FeeFilter, page, size int) ([]*models.Fee, int64, error) {
	query := psql.Select(
		"f.id", "f.student_id", "f.amount", "f.due_date", "f.is_paid",
		"f.payment_date", "f.created_at", "s.full_name",
	).From("fees f").
		Join("students s ON s.id = f.student_id")

	if filter.StudentID != nil {
		query = query.Where(squirrel.Eq{"f.student_id": *filter.StudentID})
	}
	if filter.IsPaid != nil {
		query = query.Where(squirrel.Eq{"f.is_paid": *filter.IsPaid})
	}
	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"s.full_name": searchPattern(filter.Search)})
	}

	query = query.OrderBy(orderClause(filter.Sort, feeSortKeys, defaultFeeOrder))

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

	var fees []*models.Fee
	var total int64
	for rows.Next() {
		var fee models.Fee
		if err := rows.Scan(
			&fee.ID,
			&fee.StudentID,
			&fee.Amount,
			&fee.DueDate,
			&fee.IsPaid,
			&fee.PaymentDate,
			&fee.CreatedAt,
			&fee.StudentName,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		fees = append(fees, &fee)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return fees, total, nil
}

// Update updates an existing fee.
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	query := `
		UPDATE fees
		SET student_id = $1, amount = $2, due_date = $3, is_paid = $4, payment_date = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		fee.StudentID, fee.Amount, fee.DueDate, fee.IsPaid, fee.PaymentDate, fee.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error updating fee: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// MarkPaid flips an unpaid fee to paid and records the payment date,
// returning the updated row.
func (r *FeeRepository) MarkPaid(ctx context.Context, id int64, paymentDate time.Time) (*models.Fee, error) {
	query := `
		UPDATE fees
		SET is_paid = TRUE, payment_date = $1
		WHERE id = $2
		RETURNING id, student_id, amount, due_date, is_paid, payment_date, created_at
	`

	var fee models.Fee
	err := r.db.QueryRow(ctx, query, paymentDate, id).Scan(
		&fee.ID,
		&fee.StudentID,
		&fee.Amount,
		&fee.DueDate,
		&fee.IsPaid,
		&fee.PaymentDate,
		&fee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error marking fee paid: %w", err)
	}

	return &fee, nil
}

// Delete deletes a fee by ID.
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}
	return nil
}
