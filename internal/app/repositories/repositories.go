package repositories

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds statements with PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances.
type Repositories struct {
	UserRepository         *UserRepository
	DepartmentRepository   *DepartmentRepository
	DesignationRepository  *DesignationRepository
	ProgramRepository      *ProgramRepository
	CourseRepository       *CourseRepository
	StudentRepository      *StudentRepository
	StaffRepository        *StaffRepository
	AdmissionRepository    *AdmissionRepository
	EnrollmentRepository   *EnrollmentRepository
	AttendanceRepository   *AttendanceRepository
	ExamRepository         *ExamRepository
	GradeRepository        *GradeRepository
	FeeRepository          *FeeRepository
	NotificationRepository *NotificationRepository
	StatsRepository        *StatsRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		DesignationRepository:  NewDesignationRepository(db),
		ProgramRepository:      NewProgramRepository(db),
		CourseRepository:       NewCourseRepository(db),
		StudentRepository:      NewStudentRepository(db),
		StaffRepository:        NewStaffRepository(db),
		AdmissionRepository:    NewAdmissionRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		ExamRepository:         NewExamRepository(db),
		GradeRepository:        NewGradeRepository(db),
		FeeRepository:          NewFeeRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		StatsRepository:        NewStatsRepository(db),
	}
}

// orderClause resolves a caller-supplied sort key against an allow-list of
// column expressions. A leading '-' requests descending order. Unknown keys
// fall back to the default clause.
func orderClause(sort string, allowed map[string]string, def string) string {
	if sort == "" {
		return def
	}

	desc := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")

	col, ok := allowed[key]
	if !ok {
		return def
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// searchPattern wraps a search term for ILIKE matching.
func searchPattern(term string) string {
	return "%" + term + "%"
}
