package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/app/services"
	"github.com/kaanb/campuscore/internal/pkg/helpers"
)

// Controllers holds all the controller instances.
type Controllers struct {
	DepartmentController   *DepartmentController
	DesignationController  *DesignationController
	ProgramController      *ProgramController
	CourseController       *CourseController
	StudentController      *StudentController
	StaffController        *StaffController
	AdmissionController    *AdmissionController
	EnrollmentController   *EnrollmentController
	AttendanceController   *AttendanceController
	ExamController         *ExamController
	GradeController        *GradeController
	FeeController          *FeeController
	NotificationController *NotificationController
	DashboardController    *DashboardController
}

// NewControllers wires all controllers onto the service layer.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		DepartmentController:   NewDepartmentController(svcs.DepartmentService),
		DesignationController:  NewDesignationController(svcs.DesignationService),
		ProgramController:      NewProgramController(svcs.ProgramService),
		CourseController:       NewCourseController(svcs.CourseService),
		StudentController:      NewStudentController(svcs.StudentService),
		StaffController:        NewStaffController(svcs.StaffService),
		AdmissionController:    NewAdmissionController(svcs.AdmissionService),
		EnrollmentController:   NewEnrollmentController(svcs.EnrollmentService, svcs.StudentService),
		AttendanceController:   NewAttendanceController(svcs.AttendanceService),
		ExamController:         NewExamController(svcs.ExamService),
		GradeController:        NewGradeController(svcs.GradeService, svcs.StudentService),
		FeeController:          NewFeeController(svcs.FeeService, svcs.StudentService),
		NotificationController: NewNotificationController(svcs.NotificationService, svcs.StudentService),
		DashboardController:    NewDashboardController(svcs.DashboardService),
	}
}

var errInvalidID = fmt.Errorf("id must be a positive integer")

// parseIDParam reads the :id path parameter.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// paginatedResponse assembles a list payload with pagination metadata.
func paginatedResponse(items interface{}, total int64, page, size int) dto.PaginatedResponse {
	return dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
}
