package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

func TestCreateGrade(t *testing.T) {
	student := &models.Student{ID: 1, IsActive: true}
	exam := &models.Exam{ID: 2, CourseID: 3, TotalMarks: 50}
	course := &models.Course{ID: 3, Title: "Data Structures"}

	t.Run("posts the grade and notifies", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc := NewGradeService(newFakeGradeRepo(), newFakeStudentRepo(student), newFakeExamRepo(exam), newFakeCourseRepo(course), notifier)

		grade := &models.Grade{StudentID: 1, ExamID: 2, ObtainedMarks: 42}
		if err := svc.CreateGrade(context.Background(), grade); err != nil {
			t.Fatalf("CreateGrade() error: %v", err)
		}
		if !notifier.called("GradePosted") {
			t.Error("expected GradePosted notification")
		}
	})

	t.Run("marks above the exam total are rejected", func(t *testing.T) {
		svc := NewGradeService(newFakeGradeRepo(), newFakeStudentRepo(student), newFakeExamRepo(exam), newFakeCourseRepo(course), &recordingNotifier{})
		err := svc.CreateGrade(context.Background(), &models.Grade{StudentID: 1, ExamID: 2, ObtainedMarks: 51})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
	})

	t.Run("negative marks are rejected", func(t *testing.T) {
		svc := NewGradeService(newFakeGradeRepo(), newFakeStudentRepo(student), newFakeExamRepo(exam), newFakeCourseRepo(course), &recordingNotifier{})
		err := svc.CreateGrade(context.Background(), &models.Grade{StudentID: 1, ExamID: 2, ObtainedMarks: -1})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
	})

	t.Run("marks equal to the total are accepted", func(t *testing.T) {
		svc := NewGradeService(newFakeGradeRepo(), newFakeStudentRepo(student), newFakeExamRepo(exam), newFakeCourseRepo(course), &recordingNotifier{})
		if err := svc.CreateGrade(context.Background(), &models.Grade{StudentID: 1, ExamID: 2, ObtainedMarks: 50}); err != nil {
			t.Fatalf("CreateGrade() error: %v", err)
		}
	})
}

func TestUpdateGrade(t *testing.T) {
	exam := &models.Exam{ID: 2, TotalMarks: 50}
	course := &models.Course{ID: 3, Title: "Data Structures"}

	t.Run("pins student and exam", func(t *testing.T) {
		repo := newFakeGradeRepo(&models.Grade{ID: 9, StudentID: 1, ExamID: 2, ObtainedMarks: 30})
		svc := NewGradeService(repo, newFakeStudentRepo(), newFakeExamRepo(exam), newFakeCourseRepo(course), &recordingNotifier{})

		update := &models.Grade{ID: 9, StudentID: 77, ExamID: 88, ObtainedMarks: 45}
		if err := svc.UpdateGrade(context.Background(), update); err != nil {
			t.Fatalf("UpdateGrade() error: %v", err)
		}
		if update.StudentID != 1 || update.ExamID != 2 {
			t.Errorf("identity changed: got (%d, %d), want (1, 2)", update.StudentID, update.ExamID)
		}
	})

	t.Run("revalidates marks against the exam total", func(t *testing.T) {
		repo := newFakeGradeRepo(&models.Grade{ID: 9, StudentID: 1, ExamID: 2, ObtainedMarks: 30})
		svc := NewGradeService(repo, newFakeStudentRepo(), newFakeExamRepo(exam), newFakeCourseRepo(course), &recordingNotifier{})

		err := svc.UpdateGrade(context.Background(), &models.Grade{ID: 9, ObtainedMarks: 60})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
	})
}
