package services

import (
	"github.com/kaanb/campuscore/internal/app/repositories"
)

// Services holds all the service instances.
type Services struct {
	DepartmentService   DepartmentService
	DesignationService  DesignationService
	ProgramService      ProgramService
	CourseService       CourseService
	StudentService      StudentService
	StaffService        StaffService
	AdmissionService    AdmissionService
	EnrollmentService   EnrollmentService
	AttendanceService   AttendanceService
	ExamService         ExamService
	GradeService        GradeService
	FeeService          FeeService
	NotificationService NotificationService
	DashboardService    DashboardService
}

// NewServices wires all services onto the repository layer.
func NewServices(repos *repositories.Repositories) *Services {
	notifier := NewNotifier(repos.NotificationRepository, repos.StudentRepository)

	return &Services{
		DepartmentService:  NewDepartmentService(repos.DepartmentRepository),
		DesignationService: NewDesignationService(repos.DesignationRepository),
		ProgramService:     NewProgramService(repos.ProgramRepository, repos.DepartmentRepository),
		CourseService:      NewCourseService(repos.CourseRepository, repos.ProgramRepository),
		StudentService:     NewStudentService(repos.StudentRepository, repos.ProgramRepository),
		StaffService:       NewStaffService(repos.StaffRepository, repos.DepartmentRepository, notifier),
		AdmissionService: NewAdmissionService(
			repos.AdmissionRepository, repos.StudentRepository, repos.ProgramRepository, notifier),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository, notifier),
		AttendanceService: NewAttendanceService(
			repos.AttendanceRepository, repos.StudentRepository, repos.CourseRepository, notifier),
		ExamService:         NewExamService(repos.ExamRepository, repos.CourseRepository, notifier),
		GradeService:        NewGradeService(repos.GradeRepository, repos.StudentRepository, repos.ExamRepository, repos.CourseRepository, notifier),
		FeeService:          NewFeeService(repos.FeeRepository, repos.StudentRepository, notifier),
		NotificationService: NewNotificationService(repos.NotificationRepository),
		DashboardService:    NewDashboardService(repos.StatsRepository),
	}
}
