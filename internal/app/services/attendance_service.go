package services

import (
	"context"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
)

// AttendanceService defines the interface for attendance operations.
type AttendanceService interface {
	CreateAttendance(ctx context.Context, record *models.Attendance) error
	GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error)
	ListAttendance(ctx context.Context, filter repositories.AttendanceFilter, page, size int) ([]*models.Attendance, int64, error)
	UpdateAttendance(ctx context.Context, record *models.Attendance) error
	DeleteAttendance(ctx context.Context, id int64) error
}

type attendanceServiceImpl struct {
	attendanceRepo repositories.IAttendanceRepository
	studentRepo    repositories.IStudentRepository
	courseRepo     repositories.ICourseRepository
	notifier       Notifier
}

// NewAttendanceService creates a new attendance service instance.
func NewAttendanceService(
	attendanceRepo repositories.IAttendanceRepository,
	studentRepo repositories.IStudentRepository,
	courseRepo repositories.ICourseRepository,
	notifier Notifier,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		notifier:       notifier,
	}
}

func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, record *models.Attendance) error {
	if _, err := s.studentRepo.GetByID(ctx, record.StudentID); err != nil {
		return err
	}
	course, err := s.courseRepo.GetByID(ctx, record.CourseID)
	if err != nil {
		return err
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return err
	}
	s.notifier.AttendanceMarked(ctx, record, course)
	return nil
}

func (s *attendanceServiceImpl) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

func (s *attendanceServiceImpl) ListAttendance(ctx context.Context, filter repositories.AttendanceFilter, page, size int) ([]*models.Attendance, int64, error) {
	return s.attendanceRepo.List(ctx, filter, page, size)
}

func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, record *models.Attendance) error {
	current, err := s.attendanceRepo.GetByID(ctx, record.ID)
	if err != nil {
		return err
	}
	record.StudentID = current.StudentID
	record.CourseID = current.CourseID
	record.Date = current.Date

	return s.attendanceRepo.Update(ctx, record)
}

func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}
