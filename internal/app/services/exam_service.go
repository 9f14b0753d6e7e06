package services

import (
	"context"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
)

// defaultTotalMarks applies when an exam is scheduled without a marks total.
const defaultTotalMarks = 100

// ExamService defines the interface for exam operations.
type ExamService interface {
	CreateExam(ctx context.Context, exam *models.Exam) error
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	ListExams(ctx context.Context, filter repositories.ExamFilter, page, size int) ([]*models.Exam, int64, error)
	UpdateExam(ctx context.Context, exam *models.Exam) error
	DeleteExam(ctx context.Context, id int64) error
}

type examServiceImpl struct {
	examRepo   repositories.IExamRepository
	courseRepo repositories.ICourseRepository
	notifier   Notifier
}

// NewExamService creates a new exam service instance.
func NewExamService(examRepo repositories.IExamRepository, courseRepo repositories.ICourseRepository, notifier Notifier) ExamService {
	return &examServiceImpl{
		examRepo:   examRepo,
		courseRepo: courseRepo,
		notifier:   notifier,
	}
}

// CreateExam schedules an exam and notifies every active student in the
// course's program.
func (s *examServiceImpl) CreateExam(ctx context.Context, exam *models.Exam) error {
	course, err := s.courseRepo.GetByID(ctx, exam.CourseID)
	if err != nil {
		return err
	}
	if exam.TotalMarks == 0 {
		exam.TotalMarks = defaultTotalMarks
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return err
	}
	s.notifier.ExamScheduled(ctx, exam, course)
	return nil
}

func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

func (s *examServiceImpl) ListExams(ctx context.Context, filter repositories.ExamFilter, page, size int) ([]*models.Exam, int64, error) {
	return s.examRepo.List(ctx, filter, page, size)
}

func (s *examServiceImpl) UpdateExam(ctx context.Context, exam *models.Exam) error {
	current, err := s.examRepo.GetByID(ctx, exam.ID)
	if err != nil {
		return err
	}
	exam.CourseID = current.CourseID

	return s.examRepo.Update(ctx, exam)
}

func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) error {
	return s.examRepo.Delete(ctx, id)
}
