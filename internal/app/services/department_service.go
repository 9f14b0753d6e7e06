package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// DepartmentService defines the interface for department operations.
type DepartmentService interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
	ListDepartments(ctx context.Context, filter repositories.DepartmentFilter, page, size int) ([]*models.Department, int64, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteDepartment(ctx context.Context, id int64) error
}

type departmentServiceImpl struct {
	departmentRepo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new department service instance.
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
	}
}

func (s *departmentServiceImpl) validateDepartment(department *models.Department) error {
	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(department.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *departmentServiceImpl) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}
	department.Code = strings.ToUpper(strings.TrimSpace(department.Code))
	return s.departmentRepo.Create(ctx, department)
}

func (s *departmentServiceImpl) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *departmentServiceImpl) ListDepartments(ctx context.Context, filter repositories.DepartmentFilter, page, size int) ([]*models.Department, int64, error) {
	return s.departmentRepo.List(ctx, filter, page, size)
}

func (s *departmentServiceImpl) UpdateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}
	department.Code = strings.ToUpper(strings.TrimSpace(department.Code))
	return s.departmentRepo.Update(ctx, department)
}

func (s *departmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	return s.departmentRepo.Delete(ctx, id)
}
