package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// DesignationService defines the interface for designation operations.
type DesignationService interface {
	CreateDesignation(ctx context.Context, designation *models.Designation) error
	GetDesignationByID(ctx context.Context, id int64) (*models.Designation, error)
	ListDesignations(ctx context.Context, filter repositories.DesignationFilter, page, size int) ([]*models.Designation, int64, error)
	UpdateDesignation(ctx context.Context, designation *models.Designation) error
	DeleteDesignation(ctx context.Context, id int64) error
}

type designationServiceImpl struct {
	designationRepo repositories.IDesignationRepository
}

// NewDesignationService creates a new designation service instance.
func NewDesignationService(designationRepo repositories.IDesignationRepository) DesignationService {
	return &designationServiceImpl{
		designationRepo: designationRepo,
	}
}

func (s *designationServiceImpl) CreateDesignation(ctx context.Context, designation *models.Designation) error {
	if strings.TrimSpace(designation.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.designationRepo.Create(ctx, designation)
}

func (s *designationServiceImpl) GetDesignationByID(ctx context.Context, id int64) (*models.Designation, error) {
	return s.designationRepo.GetByID(ctx, id)
}

func (s *designationServiceImpl) ListDesignations(ctx context.Context, filter repositories.DesignationFilter, page, size int) ([]*models.Designation, int64, error) {
	return s.designationRepo.List(ctx, filter, page, size)
}

func (s *designationServiceImpl) UpdateDesignation(ctx context.Context, designation *models.Designation) error {
	if strings.TrimSpace(designation.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.designationRepo.Update(ctx, designation)
}

func (s *designationServiceImpl) DeleteDesignation(ctx context.Context, id int64) error {
	return s.designationRepo.Delete(ctx, id)
}
