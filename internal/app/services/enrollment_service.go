package services

import (
	"context"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
)

// EnrollmentService defines the interface for enrollment operations.
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, filter repositories.EnrollmentFilter, page, size int) ([]*models.Enrollment, int64, error)
	UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	DeleteEnrollment(ctx context.Context, id int64) error
}

type enrollmentServiceImpl struct {
	enrollmentRepo repositories.IEnrollmentRepository
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
	notifier       Notifier
	now            func() time.Time
}

// NewEnrollmentService creates a new enrollment service instance.
func NewEnrollmentService(
	enrollmentRepo repositories.IEnrollmentRepository,
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	notifier Notifier,
) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		notifier:       notifier,
		now:            time.Now,
	}
}

func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	if _, err := s.studentRepo.GetByID(ctx, enrollment.StudentID); err != nil {
		return err
	}
	course, err := s.courseRepo.GetByID(ctx, enrollment.CourseID)
	if err != nil {
		return err
	}
	if enrollment.DateEnrolled.IsZero() {
		enrollment.DateEnrolled = s.now()
	}
	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return err
	}
	s.notifier.EnrollmentCreated(ctx, enrollment, course)
	return nil
}

func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	return s.enrollmentRepo.GetByID(ctx, id)
}

func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, filter repositories.EnrollmentFilter, page, size int) ([]*models.Enrollment, int64, error) {
	return s.enrollmentRepo.List(ctx, filter, page, size)
}

func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	current, err := s.enrollmentRepo.GetByID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	enrollment.StudentID = current.StudentID
	enrollment.CourseID = current.CourseID
	enrollment.DateEnrolled = current.DateEnrolled

	return s.enrollmentRepo.Update(ctx, enrollment)
}

func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.enrollmentRepo.Delete(ctx, id)
}
