package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// StaffService defines the interface for staff operations.
type StaffService interface {
	CreateStaff(ctx context.Context, staff *models.Staff) error
	GetStaffByID(ctx context.Context, id int64) (*models.Staff, error)
	ListStaff(ctx context.Context, filter repositories.StaffFilter, page, size int) ([]*models.Staff, int64, error)
	UpdateStaff(ctx context.Context, staff *models.Staff) error
	DeactivateStaff(ctx context.Context, id int64) error
	DeleteStaff(ctx context.Context, id int64) error
}

type staffServiceImpl struct {
	staffRepo      repositories.IStaffRepository
	departmentRepo repositories.IDepartmentRepository
	notifier       Notifier
}

// NewStaffService creates a new staff service instance.
func NewStaffService(staffRepo repositories.IStaffRepository, departmentRepo repositories.IDepartmentRepository, notifier Notifier) StaffService {
	return &staffServiceImpl{
		staffRepo:      staffRepo,
		departmentRepo: departmentRepo,
		notifier:       notifier,
	}
}

func (s *staffServiceImpl) validateStaff(staff *models.Staff) error {
	if strings.TrimSpace(staff.FullName) == "" {
		return fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}
	if staff.StaffType != models.StaffTeaching && staff.StaffType != models.StaffNonTeaching {
		return fmt.Errorf("%w: invalid staff type", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *staffServiceImpl) CreateStaff(ctx context.Context, staff *models.Staff) error {
	if err := s.validateStaff(staff); err != nil {
		return err
	}
	staff.IsActive = true

	var department *models.Department
	if staff.DepartmentID != nil {
		dep, err := s.departmentRepo.GetByID(ctx, *staff.DepartmentID)
		if err != nil {
			return err
		}
		department = dep
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return err
	}
	s.notifier.StaffCreated(ctx, staff, department)
	return nil
}

func (s *staffServiceImpl) GetStaffByID(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

func (s *staffServiceImpl) ListStaff(ctx context.Context, filter repositories.StaffFilter, page, size int) ([]*models.Staff, int64, error) {
	return s.staffRepo.List(ctx, filter, page, size)
}

func (s *staffServiceImpl) UpdateStaff(ctx context.Context, staff *models.Staff) error {
	if err := s.validateStaff(staff); err != nil {
		return err
	}
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return err
	}
	s.notifier.StaffUpdated(ctx, staff)
	return nil
}

func (s *staffServiceImpl) DeactivateStaff(ctx context.Context, id int64) error {
	return s.staffRepo.Deactivate(ctx, id)
}

func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	return s.staffRepo.Delete(ctx, id)
}
