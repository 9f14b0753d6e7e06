package services

import (
	"context"
	"fmt"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// GradeService defines the interface for grade operations.
type GradeService interface {
	CreateGrade(ctx context.Context, grade *models.Grade) error
	GetGradeByID(ctx context.Context, id int64) (*models.Grade, error)
	ListGrades(ctx context.Context, filter repositories.GradeFilter, page, size int) ([]*models.Grade, int64, error)
	UpdateGrade(ctx context.Context, grade *models.Grade) error
	DeleteGrade(ctx context.Context, id int64) error
}

type gradeServiceImpl struct {
	gradeRepo   repositories.IGradeRepository
	studentRepo repositories.IStudentRepository
	examRepo    repositories.IExamRepository
	courseRepo  repositories.ICourseRepository
	notifier    Notifier
}

// NewGradeService creates a new grade service instance.
func NewGradeService(
	gradeRepo repositories.IGradeRepository,
	studentRepo repositories.IStudentRepository,
	examRepo repositories.IExamRepository,
	courseRepo repositories.ICourseRepository,
	notifier Notifier,
) GradeService {
	return &gradeServiceImpl{
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
		examRepo:    examRepo,
		courseRepo:  courseRepo,
		notifier:    notifier,
	}
}

func (s *gradeServiceImpl) checkMarks(marks float64, exam *models.Exam) error {
	if marks < 0 {
		return fmt.Errorf("%w: obtained marks cannot be negative", apperrors.ErrValidationFailed)
	}
	if marks > float64(exam.TotalMarks) {
		return fmt.Errorf("%w: obtained marks cannot exceed total marks (%d)",
			apperrors.ErrValidationFailed, exam.TotalMarks)
	}
	return nil
}

func (s *gradeServiceImpl) CreateGrade(ctx context.Context, grade *models.Grade) error {
	if _, err := s.studentRepo.GetByID(ctx, grade.StudentID); err != nil {
		return err
	}
	exam, err := s.examRepo.GetByID(ctx, grade.ExamID)
	if err != nil {
		return err
	}
	if err := s.checkMarks(grade.ObtainedMarks, exam); err != nil {
		return err
	}
	course, err := s.courseRepo.GetByID(ctx, exam.CourseID)
	if err != nil {
		return err
	}
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return err
	}
	s.notifier.GradePosted(ctx, grade, exam, course)
	return nil
}

func (s *gradeServiceImpl) GetGradeByID(ctx context.Context, id int64) (*models.Grade, error) {
	return s.gradeRepo.GetByID(ctx, id)
}

func (s *gradeServiceImpl) ListGrades(ctx context.Context, filter repositories.GradeFilter, page, size int) ([]*models.Grade, int64, error) {
	return s.gradeRepo.List(ctx, filter, page, size)
}

func (s *gradeServiceImpl) UpdateGrade(ctx context.Context, grade *models.Grade) error {
	current, err := s.gradeRepo.GetByID(ctx, grade.ID)
	if err != nil {
		return err
	}
	grade.StudentID = current.StudentID
	grade.ExamID = current.ExamID

	exam, err := s.examRepo.GetByID(ctx, grade.ExamID)
	if err != nil {
		return err
	}
	if err := s.checkMarks(grade.ObtainedMarks, exam); err != nil {
		return err
	}

	return s.gradeRepo.Update(ctx, grade)
}

func (s *gradeServiceImpl) DeleteGrade(ctx context.Context, id int64) error {
	return s.gradeRepo.Delete(ctx, id)
}
