package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
	"github.com/kaanb/campuscore/internal/pkg/logger"
)

var notFoundErrors = []error{
	apperrors.ErrResourceNotFound,
	apperrors.ErrDepartmentNotFound,
	apperrors.ErrDesignationNotFound,
	apperrors.ErrProgramNotFound,
	apperrors.ErrCourseNotFound,
	apperrors.ErrStudentNotFound,
	apperrors.ErrStaffNotFound,
	apperrors.ErrAdmissionNotFound,
	apperrors.ErrEnrollmentNotFound,
	apperrors.ErrAttendanceNotFound,
	apperrors.ErrExamNotFound,
	apperrors.ErrGradeNotFound,
	apperrors.ErrFeeNotFound,
	apperrors.ErrNotificationNotFound,
	apperrors.ErrUserNotFound,
}

var conflictErrors = []error{
	apperrors.ErrResourceAlreadyExists,
	apperrors.ErrConflict,
	apperrors.ErrDepartmentAlreadyExists,
	apperrors.ErrDepartmentHasRelations,
	apperrors.ErrDesignationAlreadyExists,
	apperrors.ErrProgramAlreadyExists,
	apperrors.ErrCourseAlreadyExists,
	apperrors.ErrStudentAlreadyExists,
	apperrors.ErrStaffAlreadyExists,
	apperrors.ErrAdmissionAlreadyExists,
	apperrors.ErrDuplicateEnrollment,
	apperrors.ErrDuplicateAttendance,
}

func matchesAny(err error, sentinels []error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// HandleAPIError maps service and repository errors onto the standard error
// envelope with a stable error code per class.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case matchesAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})
	case matchesAny(err, conflictErrors):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}

// HandleValidationError maps request binding failures to a 400 with the
// validation error code.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
	})
}
