package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// ProgramService defines the interface for program operations.
type ProgramService interface {
	CreateProgram(ctx context.Context, program *models.Program) error
	GetProgramByID(ctx context.Context, id int64) (*models.Program, error)
	ListPrograms(ctx context.Context, filter repositories.ProgramFilter, page, size int) ([]*models.Program, int64, error)
	UpdateProgram(ctx context.Context, program *models.Program) error
	DeleteProgram(ctx context.Context, id int64) error
}

type programServiceImpl struct {
	programRepo    repositories.IProgramRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewProgramService creates a new program service instance.
func NewProgramService(programRepo repositories.IProgramRepository, departmentRepo repositories.IDepartmentRepository) ProgramService {
	return &programServiceImpl{
		programRepo:    programRepo,
		departmentRepo: departmentRepo,
	}
}

func (s *programServiceImpl) validateProgram(program *models.Program) error {
	if strings.TrimSpace(program.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(program.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if program.ProgramNumber <= 0 {
		return fmt.Errorf("%w: program number must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := s.validateProgram(program); err != nil {
		return err
	}
	if _, err := s.departmentRepo.GetByID(ctx, program.DepartmentID); err != nil {
		return err
	}
	return s.programRepo.Create(ctx, program)
}

func (s *programServiceImpl) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

func (s *programServiceImpl) ListPrograms(ctx context.Context, filter repositories.ProgramFilter, page, size int) ([]*models.Program, int64, error) {
	return s.programRepo.List(ctx, filter, page, size)
}

func (s *programServiceImpl) UpdateProgram(ctx context.Context, program *models.Program) error {
	if err := s.validateProgram(program); err != nil {
		return err
	}
	if _, err := s.departmentRepo.GetByID(ctx, program.DepartmentID); err != nil {
		return err
	}
	return s.programRepo.Update(ctx, program)
}

func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	return s.programRepo.Delete(ctx, id)
}
