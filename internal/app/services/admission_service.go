package services

import (
	"context"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
)

// AdmissionService defines the interface for admission operations.
type AdmissionService interface {
	CreateAdmission(ctx context.Context, admission *models.Admission) error
	GetAdmissionByID(ctx context.Context, id int64) (*models.Admission, error)
	ListAdmissions(ctx context.Context, filter repositories.AdmissionFilter, page, size int) ([]*models.Admission, int64, error)
	UpdateAdmission(ctx context.Context, admission *models.Admission) error
	DeleteAdmission(ctx context.Context, id int64) error
}

type admissionServiceImpl struct {
	admissionRepo repositories.IAdmissionRepository
	studentRepo   repositories.IStudentRepository
	programRepo   repositories.IProgramRepository
	notifier      Notifier
}

// NewAdmissionService creates a new admission service instance.
func NewAdmissionService(
	admissionRepo repositories.IAdmissionRepository,
	studentRepo repositories.IStudentRepository,
	programRepo repositories.IProgramRepository,
	notifier Notifier,
) AdmissionService {
	return &admissionServiceImpl{
		admissionRepo: admissionRepo,
		studentRepo:   studentRepo,
		programRepo:   programRepo,
		notifier:      notifier,
	}
}

func (s *admissionServiceImpl) CreateAdmission(ctx context.Context, admission *models.Admission) error {
	if _, err := s.studentRepo.GetByID(ctx, admission.StudentID); err != nil {
		return err
	}
	program, err := s.programRepo.GetByID(ctx, admission.ProgramID)
	if err != nil {
		return err
	}
	if admission.Status == "" {
		admission.Status = models.AdmissionPending
	}
	if err := s.admissionRepo.Create(ctx, admission); err != nil {
		return err
	}
	s.notifier.AdmissionCreated(ctx, admission, program)
	return nil
}

func (s *admissionServiceImpl) GetAdmissionByID(ctx context.Context, id int64) (*models.Admission, error) {
	return s.admissionRepo.GetByID(ctx, id)
}

func (s *admissionServiceImpl) ListAdmissions(ctx context.Context, filter repositories.AdmissionFilter, page, size int) ([]*models.Admission, int64, error) {
	return s.admissionRepo.List(ctx, filter, page, size)
}

func (s *admissionServiceImpl) UpdateAdmission(ctx context.Context, admission *models.Admission) error {
	current, err := s.admissionRepo.GetByID(ctx, admission.ID)
	if err != nil {
		return err
	}
	admission.StudentID = current.StudentID

	program, err := s.programRepo.GetByID(ctx, admission.ProgramID)
	if err != nil {
		return err
	}
	if err := s.admissionRepo.Update(ctx, admission); err != nil {
		return err
	}
	s.notifier.AdmissionUpdated(ctx, admission, program)
	return nil
}

func (s *admissionServiceImpl) DeleteAdmission(ctx context.Context, id int64) error {
	return s.admissionRepo.Delete(ctx, id)
}
