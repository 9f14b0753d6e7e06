package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

func TestCreateExam(t *testing.T) {
	course := &models.Course{ID: 2, Code: "CS101", ProgramID: 3}

	t.Run("defaults total marks and fans out to the course's program", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc := NewExamService(newFakeExamRepo(), newFakeCourseRepo(course), notifier)

		exam := &models.Exam{
			CourseID: 2,
			ExamType: models.ExamMidterm,
			Date:     time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC),
		}
		if err := svc.CreateExam(context.Background(), exam); err != nil {
			t.Fatalf("CreateExam() error: %v", err)
		}
		if exam.TotalMarks != 100 {
			t.Errorf("TotalMarks = %d, want default 100", exam.TotalMarks)
		}
		if len(notifier.examProgramIDs) != 1 || notifier.examProgramIDs[0] != 3 {
			t.Errorf("ExamScheduled program IDs = %v, want [3]", notifier.examProgramIDs)
		}
	})

	t.Run("explicit total marks are kept", func(t *testing.T) {
		svc := NewExamService(newFakeExamRepo(), newFakeCourseRepo(course), &recordingNotifier{})
		exam := &models.Exam{CourseID: 2, ExamType: models.ExamQuiz, TotalMarks: 20}
		if err := svc.CreateExam(context.Background(), exam); err != nil {
			t.Fatalf("CreateExam() error: %v", err)
		}
		if exam.TotalMarks != 20 {
			t.Errorf("TotalMarks = %d, want 20", exam.TotalMarks)
		}
	})

	t.Run("rejects unknown course", func(t *testing.T) {
		notifier := &recordingNotifier{}
		svc := NewExamService(newFakeExamRepo(), newFakeCourseRepo(), notifier)
		err := svc.CreateExam(context.Background(), &models.Exam{CourseID: 99})
		if !errors.Is(err, apperrors.ErrCourseNotFound) {
			t.Errorf("error = %v, want ErrCourseNotFound", err)
		}
		if notifier.called("ExamScheduled") {
			t.Error("notification must not fire on failed create")
		}
	})
}

func TestUpdateExamPinsCourse(t *testing.T) {
	repo := newFakeExamRepo(&models.Exam{ID: 4, CourseID: 2, ExamType: models.ExamMidterm, TotalMarks: 100})
	svc := NewExamService(repo, newFakeCourseRepo(), &recordingNotifier{})

	update := &models.Exam{ID: 4, CourseID: 77, ExamType: models.ExamFinal, TotalMarks: 50}
	if err := svc.UpdateExam(context.Background(), update); err != nil {
		t.Fatalf("UpdateExam() error: %v", err)
	}
	if update.CourseID != 2 {
		t.Errorf("CourseID changed to %d, want 2", update.CourseID)
	}
	if update.ExamType != models.ExamFinal {
		t.Errorf("ExamType = %q, want Final", update.ExamType)
	}
}
