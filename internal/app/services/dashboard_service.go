package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
	"github.com/kaanb/campuscore/internal/pkg/helpers"
)

// Dashboard filter keywords.
const (
	FilterToday  = "today"
	FilterWeek   = "week"
	FilterMonth  = "month"
	FilterCustom = "custom"
	FilterAll    = "all"
)

// DashboardService resolves a reporting window and returns record counts.
type DashboardService interface {
	GetDashboard(ctx context.Context, filterType, startDate, endDate string) (*dto.DashboardResponse, error)
}

type dashboardServiceImpl struct {
	statsRepo repositories.IStatsRepository
	now       func() time.Time
}

// NewDashboardService creates a new dashboard service instance.
func NewDashboardService(statsRepo repositories.IStatsRepository) DashboardService {
	return &dashboardServiceImpl{
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// resolveRange turns a filter keyword into a half-open [start, end) window.
// "week" starts on Monday, "month" on the first of the month.
func (s *dashboardServiceImpl) resolveRange(filterType, startDate, endDate string) (time.Time, time.Time, error) {
	today := helpers.Today(s.now())

	switch filterType {
	case FilterToday:
		return today, today.AddDate(0, 0, 1), nil
	case FilterWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7), nil
	case FilterMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0), nil
	case FilterCustom:
		if startDate == "" || endDate == "" {
			return time.Time{}, time.Time{}, fmt.Errorf(
				"%w: custom filter requires startDate and endDate", apperrors.ErrValidationFailed)
		}
		start, err := helpers.ParseDate(startDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf(
				"%w: invalid startDate", apperrors.ErrValidationFailed)
		}
		end, err := helpers.ParseDate(endDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf(
				"%w: invalid endDate", apperrors.ErrValidationFailed)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf(
				"%w: endDate must not precede startDate", apperrors.ErrValidationFailed)
		}
		// End date is inclusive for callers.
		return start, end.AddDate(0, 0, 1), nil
	case FilterAll, "":
		return time.Time{}, today.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf(
			"%w: unknown filter %q", apperrors.ErrValidationFailed, filterType)
	}
}

func (s *dashboardServiceImpl) GetDashboard(ctx context.Context, filterType, startDate, endDate string) (*dto.DashboardResponse, error) {
	start, end, err := s.resolveRange(filterType, startDate, endDate)
	if err != nil {
		return nil, err
	}

	counts, err := s.statsRepo.Counts(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if filterType == "" {
		filterType = FilterAll
	}
	info := dto.DashboardFilterInfo{FilterType: filterType}
	if filterType != FilterAll {
		startStr := start.Format(helpers.DateLayout)
		endStr := end.AddDate(0, 0, -1).Format(helpers.DateLayout)
		info.StartDate = &startStr
		info.EndDate = &endStr
	}

	return &dto.DashboardResponse{
		TotalStudents:      counts.Students,
		TotalStaff:         counts.Staff,
		TotalAdmissions:    counts.Admissions,
		TotalEnrollments:   counts.Enrollments,
		TotalAttendance:    counts.Attendance,
		TotalExams:         counts.Exams,
		TotalGrades:        counts.Grades,
		TotalFees:          counts.Fees,
		TotalNotifications: counts.Notifications,
		FilterInfo:         info,
	}, nil
}
