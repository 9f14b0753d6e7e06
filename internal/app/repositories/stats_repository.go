package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// IStatsRepository defines aggregate count queries for the dashboard.
type IStatsRepository interface {
	Counts(ctx context.Context, start, end time.Time) (*DashboardCounts, error)
}

// DashboardCounts holds row counts per resource for a reporting window.
type DashboardCounts struct {
	Students      int64
	Staff         int64
	Admissions    int64
	Enrollments   int64
	Attendance    int64
	Exams         int64
	Grades        int64
	Fees          int64
	Notifications int64
}

// StatsRepository computes dashboard aggregates.
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Counts returns per-table row counts for rows created in [start, end).
// All tables carry created_at, so the same window applies uniformly.
func (r *StatsRepository) Counts(ctx context.Context, start, end time.Time) (*DashboardCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM students      WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM staff         WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM admissions    WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM enrollments   WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM attendance    WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM exams         WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM grades        WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM fees          WHERE created_at >= $1 AND created_at < $2),
			(SELECT COUNT(*) FROM notifications WHERE created_at >= $1 AND created_at < $2)
	`

	var counts DashboardCounts
	err := r.db.QueryRow(ctx, query, start, end).Scan(
		&counts.Students,
		&counts.Staff,
		&counts.Admissions,
		&counts.Enrollments,
		&counts.Attendance,
		&counts.Exams,
		&counts.Grades,
		&counts.Fees,
		&counts.Notifications,
	)
	if err != nil {
		return nil, fmt.Errorf("error computing dashboard counts: %w", err)
	}

	return &counts, nil
}
