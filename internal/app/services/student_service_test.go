package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

func studentFixture(programID int64) *models.Student {
	return &models.Student{
		RegistrationNo: "REG-2025-001",
		UserID:         10,
		FullName:       "Ayesha Khan",
		Gender:         models.GenderFemale,
		DOB:            time.Date(2004, 5, 12, 0, 0, 0, 0, time.UTC),
		Email:          "ayesha@example.edu",
		Phone:          "+92-300-1234567",
		Address:        "Lahore",
		ProgramID:      programID,
		EnrollmentYear: 2025,
	}
}

func TestCreateStudent(t *testing.T) {
	program := &models.Program{ID: 1, Code: "BSCS"}
	fixedNow := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	newService := func(repo *fakeStudentRepo, programRepo *fakeProgramRepo) *studentServiceImpl {
		return &studentServiceImpl{
			studentRepo: repo,
			programRepo: programRepo,
			now:         func() time.Time { return fixedNow },
		}
	}

	t.Run("activates the record on create", func(t *testing.T) {
		repo := newFakeStudentRepo()
		svc := newService(repo, newFakeProgramRepo(program))

		student := studentFixture(1)
		student.IsActive = false
		if err := svc.CreateStudent(context.Background(), student); err != nil {
			t.Fatalf("CreateStudent() error: %v", err)
		}
		if !student.IsActive {
			t.Error("new students must be active")
		}
	})

	t.Run("rejects a future date of birth", func(t *testing.T) {
		svc := newService(newFakeStudentRepo(), newFakeProgramRepo(program))
		student := studentFixture(1)
		student.DOB = fixedNow.AddDate(1, 0, 0)

		err := svc.CreateStudent(context.Background(), student)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
	})

	t.Run("rejects out-of-range enrollment year", func(t *testing.T) {
		svc := newService(newFakeStudentRepo(), newFakeProgramRepo(program))
		student := studentFixture(1)
		student.EnrollmentYear = 2030

		err := svc.CreateStudent(context.Background(), student)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
	})

	t.Run("rejects unknown program", func(t *testing.T) {
		svc := newService(newFakeStudentRepo(), newFakeProgramRepo())
		err := svc.CreateStudent(context.Background(), studentFixture(99))
		if !errors.Is(err, apperrors.ErrProgramNotFound) {
			t.Errorf("error = %v, want ErrProgramNotFound", err)
		}
	})
}

func TestBulkCreateStudents(t *testing.T) {
	program := &models.Program{ID: 1}

	t.Run("empty payload is a validation error", func(t *testing.T) {
		svc := NewStudentService(newFakeStudentRepo(), newFakeProgramRepo(program))
		err := svc.BulkCreateStudents(context.Background(), nil)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
	})

	t.Run("one invalid item fails the whole batch", func(t *testing.T) {
		repo := newFakeStudentRepo()
		svc := NewStudentService(repo, newFakeProgramRepo(program))

		bad := studentFixture(1)
		bad.RegistrationNo = " "
		err := svc.BulkCreateStudents(context.Background(), []*models.Student{studentFixture(1), bad})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("error = %v, want validation failure", err)
		}
		if len(repo.students) != 0 {
			t.Errorf("no students should be written, found %d", len(repo.students))
		}
	})
}

func TestDeactivateStudent(t *testing.T) {
	repo := newFakeStudentRepo(&models.Student{ID: 3, IsActive: true})
	svc := NewStudentService(repo, newFakeProgramRepo())

	if err := svc.DeactivateStudent(context.Background(), 3); err != nil {
		t.Fatalf("DeactivateStudent() error: %v", err)
	}
	if repo.students[3].IsActive {
		t.Error("student still active after deactivation")
	}

	if err := svc.DeactivateStudent(context.Background(), 99); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("error = %v, want ErrStudentNotFound", err)
	}
}
