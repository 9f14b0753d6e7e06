package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations, including the
// bulk endpoints used by department imports.
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context, filter repositories.CourseFilter, page, size int) ([]*models.Course, int64, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
	BulkCreateCourses(ctx context.Context, courses []*models.Course) error
	BulkUpdateCourses(ctx context.Context, courses []*models.Course) ([]*models.Course, error)
}

type courseServiceImpl struct {
	courseRepo  repositories.ICourseRepository
	programRepo repositories.IProgramRepository
}

// NewCourseService creates a new course service instance.
func NewCourseService(courseRepo repositories.ICourseRepository, programRepo repositories.IProgramRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		programRepo: programRepo,
	}
}

func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.CreditHours <= 0 {
		return fmt.Errorf("%w: credit hours must be positive", apperrors.ErrValidationFailed)
	}
	if course.Semester < 1 || course.Semester > 8 {
		return fmt.Errorf("%w: semester must be between 1 and 8", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	if _, err := s.programRepo.GetByID(ctx, course.ProgramID); err != nil {
		return err
	}
	return s.courseRepo.Create(ctx, course)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter, page, size int) ([]*models.Course, int64, error) {
	return s.courseRepo.List(ctx, filter, page, size)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}
	if _, err := s.programRepo.GetByID(ctx, course.ProgramID); err != nil {
		return err
	}
	return s.courseRepo.Update(ctx, course)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}

func (s *courseServiceImpl) BulkCreateCourses(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return fmt.Errorf("%w: empty course list", apperrors.ErrValidationFailed)
	}
	for _, course := range courses {
		if err := s.validateCourse(course); err != nil {
			return err
		}
	}
	return s.courseRepo.BulkCreate(ctx, courses)
}

func (s *courseServiceImpl) BulkUpdateCourses(ctx context.Context, courses []*models.Course) ([]*models.Course, error) {
	if len(courses) == 0 {
		return nil, fmt.Errorf("%w: empty course list", apperrors.ErrValidationFailed)
	}
	for _, course := range courses {
		if course.ID <= 0 {
			return nil, fmt.Errorf("%w: each course needs an id", apperrors.ErrValidationFailed)
		}
		if err := s.validateCourse(course); err != nil {
			return nil, err
		}
	}
	return s.courseRepo.BulkUpdate(ctx, courses)
}
