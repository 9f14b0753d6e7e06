package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// StudentService defines the interface for student operations. List queries
// made by Student-role callers are scoped to their own profile.
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error)
	ListStudents(ctx context.Context, filter repositories.StudentFilter, page, size int) ([]*models.Student, int64, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeactivateStudent(ctx context.Context, id int64) error
	DeleteStudent(ctx context.Context, id int64) error
	BulkCreateStudents(ctx context.Context, students []*models.Student) error
	BulkUpdateStudents(ctx context.Context, students []*models.Student) ([]*models.Student, error)
}

type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	programRepo repositories.IProgramRepository
	now         func() time.Time
}

// NewStudentService creates a new student service instance.
func NewStudentService(studentRepo repositories.IStudentRepository, programRepo repositories.IProgramRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		programRepo: programRepo,
		now:         time.Now,
	}
}

func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if strings.TrimSpace(student.RegistrationNo) == "" {
		return fmt.Errorf("%w: registration number cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	if student.DOB.After(s.now()) {
		return fmt.Errorf("%w: date of birth cannot be in the future", apperrors.ErrValidationFailed)
	}
	if student.EnrollmentYear < 1900 || student.EnrollmentYear > s.now().Year()+1 {
		return fmt.Errorf("%w: enrollment year out of range", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	if _, err := s.programRepo.GetByID(ctx, student.ProgramID); err != nil {
		return err
	}
	student.IsActive = true
	return s.studentRepo.Create(ctx, student)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentServiceImpl) GetStudentByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return s.studentRepo.GetByUserID(ctx, userID)
}

func (s *studentServiceImpl) ListStudents(ctx context.Context, filter repositories.StudentFilter, page, size int) ([]*models.Student, int64, error) {
	return s.studentRepo.List(ctx, filter, page, size)
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	if _, err := s.programRepo.GetByID(ctx, student.ProgramID); err != nil {
		return err
	}
	return s.studentRepo.Update(ctx, student)
}

func (s *studentServiceImpl) DeactivateStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Deactivate(ctx, id)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

func (s *studentServiceImpl) BulkCreateStudents(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return fmt.Errorf("%w: empty student list", apperrors.ErrValidationFailed)
	}
	for _, student := range students {
		if err := s.validateStudent(student); err != nil {
			return err
		}
		student.IsActive = true
	}
	return s.studentRepo.BulkCreate(ctx, students)
}

func (s *studentServiceImpl) BulkUpdateStudents(ctx context.Context, students []*models.Student) ([]*models.Student, error) {
	if len(students) == 0 {
		return nil, fmt.Errorf("%w: empty student list", apperrors.ErrValidationFailed)
	}
	for _, student := range students {
		if student.ID <= 0 {
			return nil, fmt.Errorf("%w: each student needs an id", apperrors.ErrValidationFailed)
		}
		if err := s.validateStudent(student); err != nil {
			return nil, err
		}
	}
	return s.studentRepo.BulkUpdate(ctx, students)
}
