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

// IStudentRepository defines database operations for students.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	List(ctx context.Context, filter StudentFilter, page, size int) ([]*models.Student, int64, error)
	Update(ctx context.Context, student *models.Student) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	BulkCreate(ctx context.Context, students []*models.Student) error
	BulkUpdate(ctx context.Context, students []*models.Student) ([]*models.Student, error)
	ListIDsByProgram(ctx context.Context, programID int64) ([]int64, error)
}

// StudentFilter narrows student list queries.
type StudentFilter struct {
	ProgramID      *int64
	EnrollmentYear *int
	Gender         *string
	IsActive       *bool
	UserID         *int64 // set for Student-role callers so they only see their own row
	Search         string
	Sort           string
}

var studentSortKeys = map[string]string{
	"fullName":       "full_name",
	"enrollmentYear": "enrollment_year",
	"id":             "id",
}

const defaultStudentOrder = "id DESC"

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = "id, registration_no, user_id, full_name, gender, dob, email, phone, address, program_id, enrollment_year, is_active, created_at"

func scanStudent(row pgx.Row, s *models.Student) error {
	return row.Scan(
		&s.ID,
		&s.RegistrationNo,
		&s.UserID,
		&s.FullName,
		&s.Gender,
		&s.DOB,
		&s.Email,
		&s.Phone,
		&s.Address,
		&s.ProgramID,
		&s.EnrollmentYear,
		&s.IsActive,
		&s.CreatedAt,
	)
}

// Create inserts a new student profile.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (registration_no, user_id, full_name, gender, dob, email, phone, address, program_id, enrollment_year, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		student.RegistrationNo, student.UserID, student.FullName, student.Gender,
		student.DOB, student.Email, student.Phone, student.Address,
		student.ProgramID, student.EnrollmentYear, student.IsActive,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	var student models.Student
	if err := scanStudent(r.db.QueryRow(ctx, query, id), &student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByUserID retrieves the student profile linked to a user account.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`

	var student models.Student
	if err := scanStudent(r.db.QueryRow(ctx, query, userID), &student); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// List retrieves students with filtering and pagination.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter, page, size int) ([]*models.Student, int64, error) {
	query := psql.Select(
		"id", "registration_no", "user_id", "full_name", "gender", "dob",
		"email", "phone", "address", "program_id", "enrollment_year", "is_active", "created_at",
	).From("students")

	if filter.ProgramID != nil {
		query = query.Where(squirrel.Eq{"program_id": *filter.ProgramID})
	}
	if filter.EnrollmentYear != nil {
		query = query.Where(squirrel.Eq{"enrollment_year": *filter.EnrollmentYear})
	}
	if filter.Gender != nil {
		query = query.Where(squirrel.Eq{"gender": *filter.Gender})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}
	if filter.UserID != nil {
		query = query.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Search != "" {
		pattern := searchPattern(filter.Search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"registration_no": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	query = query.OrderBy(orderClause(filter.Sort, studentSortKeys, defaultStudentOrder))

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

	var students []*models.Student
	var total int64
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(
			&s.ID,
			&s.RegistrationNo,
			&s.UserID,
			&s.FullName,
			&s.Gender,
			&s.DOB,
			&s.Email,
			&s.Phone,
			&s.Address,
			&s.ProgramID,
			&s.EnrollmentYear,
			&s.IsActive,
			&s.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// Update updates an existing student profile.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET registration_no = $1, full_name = $2, gender = $3, dob = $4, email = $5,
		    phone = $6, address = $7, program_id = $8, enrollment_year = $9, is_active = $10
		WHERE id = $11
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.RegistrationNo, student.FullName, student.Gender, student.DOB, student.Email,
		student.Phone, student.Address, student.ProgramID, student.EnrollmentYear, student.IsActive,
		student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Deactivate marks a student inactive without removing the row.
func (r *StudentRepository) Deactivate(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE students SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deactivating student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete deletes a student by ID. Dependent rows cascade via schema.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// BulkCreate inserts all students in a single transaction. Any failure rolls
// the whole batch back.
func (r *StudentRepository) BulkCreate(ctx context.Context, students []*models.Student) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO students (registration_no, user_id, full_name, gender, dob, email, phone, address, program_id, enrollment_year, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	for _, s := range students {
		err := tx.QueryRow(ctx, query,
			s.RegistrationNo, s.UserID, s.FullName, s.Gender, s.DOB, s.Email,
			s.Phone, s.Address, s.ProgramID, s.EnrollmentYear, s.IsActive,
		).Scan(&s.ID, &s.CreatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrStudentAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrProgramNotFound
			}
			return fmt.Errorf("error creating student %q: %w", s.RegistrationNo, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// BulkUpdate applies updates in a single transaction and returns the students
// that were actually updated. Unknown IDs are skipped.
func (r *StudentRepository) BulkUpdate(ctx context.Context, students []*models.Student) ([]*models.Student, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// is_active is untouched here: the bulk payload carries no flag.
	query := `
		UPDATE students
		SET registration_no = $1, full_name = $2, gender = $3, dob = $4, email = $5,
		    phone = $6, address = $7, program_id = $8, enrollment_year = $9
		WHERE id = $10
	`

	var updated []*models.Student
	for _, s := range students {
		cmdTag, err := tx.Exec(ctx, query,
			s.RegistrationNo, s.FullName, s.Gender, s.DOB, s.Email,
			s.Phone, s.Address, s.ProgramID, s.EnrollmentYear, s.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return nil, apperrors.ErrStudentAlreadyExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return nil, apperrors.ErrProgramNotFound
			}
			return nil, fmt.Errorf("error updating student %d: %w", s.ID, err)
		}
		if cmdTag.RowsAffected() > 0 {
			updated = append(updated, s)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// ListIDsByProgram returns the IDs of all active students in a program.
// Used by the exam fan-out to address every student a schedule concerns.
func (r *StudentRepository) ListIDsByProgram(ctx context.Context, programID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM students WHERE program_id = $1 AND is_active`, programID)
	if err != nil {
		return nil, fmt.Errorf("error listing program students: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
