package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

var defaultDesignations = []string{
	"Professor",
	"Associate Professor",
	"Assistant Professor",
	"Lecturer",
	"Registrar",
	"Lab Engineer",
}

// CreateDefaultData seeds designations, a starter department and program, and
// the default admin account. Existing rows are left untouched so the function
// is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	designationRepo := repositories.NewDesignationRepository(dbPool)
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	programRepo := repositories.NewProgramRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/creating default data...")
	var finalErr error

	for _, title := range defaultDesignations {
		designation := &models.Designation{Title: title}
		err := designationRepo.Create(ctx, designation)
		if err != nil && !errors.Is(err, apperrors.ErrDesignationAlreadyExists) {
			lgr.Error().Err(err).Str("title", title).Msg("Error creating default designation")
			finalErr = errors.Join(finalErr, err)
		}
	}

	description := "Founding department created at first startup"
	department := &models.Department{
		Name:        "Computer Science",
		Code:        "CS",
		Description: &description,
	}
	err := departmentRepo.Create(ctx, department)
	switch {
	case err == nil:
		program := &models.Program{
			ProgramNumber: 1,
			Name:          "BS Computer Science",
			Code:          "BSCS",
			ProgramType:   models.ProgramBachelor,
			DepartmentID:  department.ID,
			DurationYears: 4,
		}
		if err := programRepo.Create(ctx, program); err != nil &&
			!errors.Is(err, apperrors.ErrProgramAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating default program")
			finalErr = errors.Join(finalErr, err)
		}
	case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
		// Already seeded on a previous startup.
	default:
		lgr.Error().Err(err).Msg("Error creating default department")
		finalErr = errors.Join(finalErr, err)
	}

	if err := createAdminUser(ctx, userRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check finished.")
	return finalErr
}

func createAdminUser(ctx context.Context, userRepo *repositories.UserRepository, lgr zerolog.Logger) error {
	_, err := userRepo.GetByUsername(ctx, "admin")
	if err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for admin user")
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        "admin@campuscore.edu",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created")
	return nil
}
