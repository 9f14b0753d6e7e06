package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaanb/campuscore/internal/app/controllers"
	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/models/dto"
	"github.com/kaanb/campuscore/internal/middleware"
)

// SetupRouter configures all application routes. Every resource group sits
// behind JWT authentication plus a role allow-list; write access is always
// at least as restricted as read access.
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	adminStaff := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff)
	allRoles := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleStaff, models.RoleStudent)

	// Dashboard (Admin, Staff)
	v1.GET("/dashboard", adminStaff, ctrls.DashboardController.GetDashboard)

	// Departments (Admin, Staff)
	departments := v1.Group("/departments", adminStaff)
	{
		departments.POST("", ctrls.DepartmentController.CreateDepartment)
		departments.GET("", ctrls.DepartmentController.ListDepartments)
		departments.GET("/:id", ctrls.DepartmentController.GetDepartmentByID)
		departments.PUT("/:id", ctrls.DepartmentController.UpdateDepartment)
		departments.DELETE("/:id", ctrls.DepartmentController.DeleteDepartment)
	}

	// Designations (Admin)
	designations := v1.Group("/designations", adminOnly)
	{
		designations.POST("", ctrls.DesignationController.CreateDesignation)
		designations.GET("", ctrls.DesignationController.ListDesignations)
		designations.GET("/:id", ctrls.DesignationController.GetDesignationByID)
		designations.PUT("/:id", ctrls.DesignationController.UpdateDesignation)
		designations.DELETE("/:id", ctrls.DesignationController.DeleteDesignation)
	}

	// Programs (Admin, Staff)
	programs := v1.Group("/programs", adminStaff)
	{
		programs.POST("", ctrls.ProgramController.CreateProgram)
		programs.GET("", ctrls.ProgramController.ListPrograms)
		programs.GET("/:id", ctrls.ProgramController.GetProgramByID)
		programs.PUT("/:id", ctrls.ProgramController.UpdateProgram)
		programs.DELETE("/:id", ctrls.ProgramController.DeleteProgram)
	}

	// Courses (Admin, Staff)
	courses := v1.Group("/courses", adminStaff)
	{
		courses.POST("", ctrls.CourseController.CreateCourse)
		courses.GET("", ctrls.CourseController.ListCourses)
		courses.POST("/bulk", ctrls.CourseController.BulkCreateCourses)
		courses.PUT("/bulk", ctrls.CourseController.BulkUpdateCourses)
		courses.GET("/:id", ctrls.CourseController.GetCourseByID)
		courses.PUT("/:id", ctrls.CourseController.UpdateCourse)
		courses.DELETE("/:id", ctrls.CourseController.DeleteCourse)
	}

	// Students: reads for every role (scoped in the controller), writes for
	// Admin and Staff.
	students := v1.Group("/students")
	{
		students.GET("", allRoles, ctrls.StudentController.ListStudents)
		students.GET("/:id", allRoles, ctrls.StudentController.GetStudentByID)

		students.POST("", adminStaff, ctrls.StudentController.CreateStudent)
		students.POST("/bulk", adminStaff, ctrls.StudentController.BulkCreateStudents)
		students.PUT("/bulk", adminStaff, ctrls.StudentController.BulkUpdateStudents)
		students.PUT("/:id", adminStaff, ctrls.StudentController.UpdateStudent)
		students.POST("/:id/deactivate", adminStaff, ctrls.StudentController.DeactivateStudent)
		students.DELETE("/:id", adminStaff, ctrls.StudentController.DeleteStudent)
	}

	// Staff (Admin)
	staff := v1.Group("/staff", adminOnly)
	{
		staff.POST("", ctrls.StaffController.CreateStaff)
		staff.GET("", ctrls.StaffController.ListStaff)
		staff.GET("/:id", ctrls.StaffController.GetStaffByID)
		staff.PUT("/:id", ctrls.StaffController.UpdateStaff)
		staff.POST("/:id/deactivate", ctrls.StaffController.DeactivateStaff)
		staff.DELETE("/:id", ctrls.StaffController.DeleteStaff)
	}

	// Admissions (Admin, Staff)
	admissions := v1.Group("/admissions", adminStaff)
	{
		admissions.POST("", ctrls.AdmissionController.CreateAdmission)
		admissions.GET("", ctrls.AdmissionController.ListAdmissions)
		admissions.GET("/:id", ctrls.AdmissionController.GetAdmissionByID)
		admissions.PUT("/:id", ctrls.AdmissionController.UpdateAdmission)
		admissions.DELETE("/:id", ctrls.AdmissionController.DeleteAdmission)
	}

	// Enrollments: reads and creates for every role (students may enroll
	// themselves), updates and deletes for Admin and Staff.
	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", allRoles, ctrls.EnrollmentController.ListEnrollments)
		enrollments.GET("/:id", allRoles, ctrls.EnrollmentController.GetEnrollmentByID)
		enrollments.POST("", allRoles, ctrls.EnrollmentController.CreateEnrollment)

		enrollments.PUT("/:id", adminStaff, ctrls.EnrollmentController.UpdateEnrollment)
		enrollments.DELETE("/:id", adminStaff, ctrls.EnrollmentController.DeleteEnrollment)
	}

	// Attendance (Admin, Staff)
	attendance := v1.Group("/attendance", adminStaff)
	{
		attendance.POST("", ctrls.AttendanceController.CreateAttendance)
		attendance.GET("", ctrls.AttendanceController.ListAttendance)
		attendance.GET("/:id", ctrls.AttendanceController.GetAttendanceByID)
		attendance.PUT("/:id", ctrls.AttendanceController.UpdateAttendance)
		attendance.DELETE("/:id", ctrls.AttendanceController.DeleteAttendance)
	}

	// Exams (Admin, Staff)
	exams := v1.Group("/exams", adminStaff)
	{
		exams.POST("", ctrls.ExamController.CreateExam)
		exams.GET("", ctrls.ExamController.ListExams)
		exams.GET("/:id", ctrls.ExamController.GetExamByID)
		exams.PUT("/:id", ctrls.ExamController.UpdateExam)
		exams.DELETE("/:id", ctrls.ExamController.DeleteExam)
	}

	// Grades: reads for every role (scoped in the controller), writes for
	// Admin and Staff.
	grades := v1.Group("/grades")
	{
		grades.GET("", allRoles, ctrls.GradeController.ListGrades)
		grades.GET("/:id", allRoles, ctrls.GradeController.GetGradeByID)

		grades.POST("", adminStaff, ctrls.GradeController.CreateGrade)
		grades.PUT("/:id", adminStaff, ctrls.GradeController.UpdateGrade)
		grades.DELETE("/:id", adminStaff, ctrls.GradeController.DeleteGrade)
	}

	// Fees: reads for every role (scoped in the controller), writes for
	// Admin and Staff.
	fees := v1.Group("/fees")
	{
		fees.GET("", allRoles, ctrls.FeeController.ListFees)
		fees.GET("/:id", allRoles, ctrls.FeeController.GetFeeByID)

		fees.POST("", adminStaff, ctrls.FeeController.CreateFee)
		fees.PUT("/:id", adminStaff, ctrls.FeeController.UpdateFee)
		fees.POST("/:id/pay", adminStaff, ctrls.FeeController.MarkFeePaid)
		fees.DELETE("/:id", adminStaff, ctrls.FeeController.DeleteFee)
	}

	// Notifications: reads and mark-read for every role (scoped in the
	// controller), creates and deletes for Admin and Staff.
	notifications := v1.Group("/notifications")
	{
		notifications.GET("", allRoles, ctrls.NotificationController.ListNotifications)
		notifications.GET("/:id", allRoles, ctrls.NotificationController.GetNotificationByID)
		notifications.POST("/:id/read", allRoles, ctrls.NotificationController.MarkNotificationRead)

		notifications.POST("", adminStaff, ctrls.NotificationController.CreateNotification)
		notifications.DELETE("/:id", adminStaff, ctrls.NotificationController.DeleteNotification)
	}
}
