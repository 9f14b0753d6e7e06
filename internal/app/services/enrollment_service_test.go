package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

func TestCreateEnrollment(t *testing.T) {
	student := &models.Student{ID: 1, UserID: 10, ProgramID: 1, IsActive: true}
	course := &models.Course{ID: 2, Code: "CS101", ProgramID: 1}

	t.Run("sets enrollment date and notifies the student", func(t *testing.T) {
		notifier := &recordingNotifier{}
		fixed := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
		svc := &enrollmentServiceImpl{
			enrollmentRepo: newFakeEnrollmentRepo(),
			studentRepo:    newFakeStudentRepo(student),
			courseRepo:     newFakeCourseRepo(course),
			notifier:       notifier,
			now:            func() time.Time { return fixed },
		}

		enrollment := &models.Enrollment{StudentID: 1, CourseID: 2, Semester: 1, Year: 2025}
		if err := svc.CreateEnrollment(context.Background(), enrollment); err != nil {
			t.Fatalf("CreateEnrollment() error: %v", err)
		}
		if !enrollment.DateEnrolled.Equal(fixed) {
			t.Errorf("DateEnrolled = %v, want %v", enrollment.DateEnrolled, fixed)
		}
		if !notifier.called("EnrollmentCreated") {
			t.Error("expected EnrollmentCreated notification")
		}
	})

	t.Run("rejects unknown student", func(t *testing.T) {
		svc := NewEnrollmentService(
			newFakeEnrollmentRepo(), newFakeStudentRepo(), newFakeCourseRepo(course), &recordingNotifier{})

		err := svc.CreateEnrollment(context.Background(), &models.Enrollment{StudentID: 99, CourseID: 2})
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			t.Errorf("error = %v, want ErrStudentNotFound", err)
		}
	})

	t.Run("duplicate enrollment surfaces without notification", func(t *testing.T) {
		notifier := &recordingNotifier{}
		repo := newFakeEnrollmentRepo()
		repo.createErr = apperrors.ErrDuplicateEnrollment
		svc := NewEnrollmentService(repo, newFakeStudentRepo(student), newFakeCourseRepo(course), notifier)

		err := svc.CreateEnrollment(context.Background(), &models.Enrollment{StudentID: 1, CourseID: 2})
		if !errors.Is(err, apperrors.ErrDuplicateEnrollment) {
			t.Errorf("error = %v, want ErrDuplicateEnrollment", err)
		}
		if notifier.called("EnrollmentCreated") {
			t.Error("notification must not fire on failed create")
		}
	})
}

func TestUpdateEnrollmentPinsIdentity(t *testing.T) {
	enrolled := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Enrollment{
		ID: 5, StudentID: 1, CourseID: 2, Semester: 1, Year: 2025, DateEnrolled: enrolled,
	}
	repo := newFakeEnrollmentRepo(existing)
	svc := NewEnrollmentService(repo, newFakeStudentRepo(), newFakeCourseRepo(), &recordingNotifier{})

	update := &models.Enrollment{ID: 5, StudentID: 42, CourseID: 43, Semester: 2, Year: 2026}
	if err := svc.UpdateEnrollment(context.Background(), update); err != nil {
		t.Fatalf("UpdateEnrollment() error: %v", err)
	}

	if update.StudentID != 1 || update.CourseID != 2 {
		t.Errorf("student/course changed: got (%d, %d), want (1, 2)", update.StudentID, update.CourseID)
	}
	if !update.DateEnrolled.Equal(enrolled) {
		t.Errorf("DateEnrolled changed: got %v, want %v", update.DateEnrolled, enrolled)
	}
	if update.Semester != 2 || update.Year != 2026 {
		t.Errorf("mutable fields not applied: got semester %d year %d", update.Semester, update.Year)
	}
}
