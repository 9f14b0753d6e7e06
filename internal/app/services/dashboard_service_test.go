package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

func TestGetDashboardRanges(t *testing.T) {
	// Wednesday, 2025-10-15.
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	newService := func(stats *fakeStatsRepo) *dashboardServiceImpl {
		return &dashboardServiceImpl{
			statsRepo: stats,
			now:       func() time.Time { return now },
		}
	}

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		filterType string
		startDate  string
		endDate    string
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{
			name:       "today covers the current day",
			filterType: FilterToday,
			wantStart:  day(2025, 10, 15),
			wantEnd:    day(2025, 10, 16),
		},
		{
			name:       "week starts on Monday",
			filterType: FilterWeek,
			wantStart:  day(2025, 10, 13),
			wantEnd:    day(2025, 10, 20),
		},
		{
			name:       "month starts on the first",
			filterType: FilterMonth,
			wantStart:  day(2025, 10, 1),
			wantEnd:    day(2025, 11, 1),
		},
		{
			name:       "custom end date is inclusive",
			filterType: FilterCustom,
			startDate:  "2025-10-01",
			endDate:    "2025-10-10",
			wantStart:  day(2025, 10, 1),
			wantEnd:    day(2025, 10, 11),
		},
		{
			name:       "all counts everything up to today",
			filterType: FilterAll,
			wantStart:  time.Time{},
			wantEnd:    day(2025, 10, 16),
		},
		{
			name:       "empty filter defaults to all",
			filterType: "",
			wantStart:  time.Time{},
			wantEnd:    day(2025, 10, 16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &fakeStatsRepo{}
			svc := newService(stats)

			resp, err := svc.GetDashboard(context.Background(), tt.filterType, tt.startDate, tt.endDate)
			if err != nil {
				t.Fatalf("GetDashboard() error: %v", err)
			}
			if !stats.start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", stats.start, tt.wantStart)
			}
			if !stats.end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", stats.end, tt.wantEnd)
			}
			if tt.filterType == "" && resp.FilterInfo.FilterType != FilterAll {
				t.Errorf("FilterType = %q, want %q", resp.FilterInfo.FilterType, FilterAll)
			}
		})
	}
}

func TestGetDashboardValidation(t *testing.T) {
	svc := NewDashboardService(&fakeStatsRepo{})

	cases := []struct {
		name       string
		filterType string
		startDate  string
		endDate    string
	}{
		{"unknown filter", "yesterday", "", ""},
		{"custom without dates", FilterCustom, "", ""},
		{"custom with bad start", FilterCustom, "15-10-2025", "2025-10-16"},
		{"custom with end before start", FilterCustom, "2025-10-16", "2025-10-01"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetDashboard(context.Background(), tt.filterType, tt.startDate, tt.endDate)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error = %v, want validation failure", err)
			}
		})
	}
}

func TestGetDashboardCounts(t *testing.T) {
	stats := &fakeStatsRepo{counts: repositories.DashboardCounts{
		Students:    12,
		Staff:       4,
		Admissions:  9,
		Enrollments: 30,
		Fees:        18,
	}}
	svc := NewDashboardService(stats)

	resp, err := svc.GetDashboard(context.Background(), FilterAll, "", "")
	if err != nil {
		t.Fatalf("GetDashboard() error: %v", err)
	}
	if resp.TotalStudents != 12 || resp.TotalStaff != 4 || resp.TotalAdmissions != 9 {
		t.Errorf("unexpected counts: %+v", resp)
	}
	if resp.TotalEnrollments != 30 || resp.TotalFees != 18 {
		t.Errorf("unexpected counts: %+v", resp)
	}
	if resp.FilterInfo.StartDate != nil || resp.FilterInfo.EndDate != nil {
		t.Error("all filter must not report a date window")
	}
}
