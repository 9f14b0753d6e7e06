package services

import (
	"context"
	"fmt"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/logger"
)

// Notifier writes the notifications that follow resource saves: admission
// decisions, enrollments, fee reminders, exam schedules, attendance marks,
// grade postings and staff profile changes. Failures are logged and never
// fail the triggering operation.
type Notifier interface {
	AdmissionCreated(ctx context.Context, admission *models.Admission, program *models.Program)
	AdmissionUpdated(ctx context.Context, admission *models.Admission, program *models.Program)
	EnrollmentCreated(ctx context.Context, enrollment *models.Enrollment, course *models.Course)
	FeeCreated(ctx context.Context, fee *models.Fee)
	FeeOverdue(ctx context.Context, fee *models.Fee)
	FeePaid(ctx context.Context, fee *models.Fee)
	ExamScheduled(ctx context.Context, exam *models.Exam, course *models.Course)
	AttendanceMarked(ctx context.Context, record *models.Attendance, course *models.Course)
	GradePosted(ctx context.Context, grade *models.Grade, exam *models.Exam, course *models.Course)
	StaffCreated(ctx context.Context, staff *models.Staff, department *models.Department)
	StaffUpdated(ctx context.Context, staff *models.Staff)
}

type notifierImpl struct {
	notificationRepo repositories.INotificationRepository
	studentRepo      repositories.IStudentRepository
}

// NewNotifier creates the post-save notification writer.
func NewNotifier(notificationRepo repositories.INotificationRepository, studentRepo repositories.IStudentRepository) Notifier {
	return &notifierImpl{
		notificationRepo: notificationRepo,
		studentRepo:      studentRepo,
	}
}

func (n *notifierImpl) toStudent(ctx context.Context, studentID int64, notifType, title, message string) {
	notif := &models.Notification{
		RecipientStudentID: &studentID,
		NotifType:          notifType,
		Title:              title,
		Message:            message,
	}
	if err := n.notificationRepo.Create(ctx, notif); err != nil {
		logger.Error().Err(err).Int64("student_id", studentID).Str("notif_type", notifType).
			Msg("Failed to write student notification")
	}
}

func (n *notifierImpl) toStaff(ctx context.Context, staffID int64, notifType, title, message string) {
	notif := &models.Notification{
		RecipientStaffID: &staffID,
		NotifType:        notifType,
		Title:            title,
		Message:          message,
	}
	if err := n.notificationRepo.Create(ctx, notif); err != nil {
		logger.Error().Err(err).Int64("staff_id", staffID).Str("notif_type", notifType).
			Msg("Failed to write staff notification")
	}
}

func (n *notifierImpl) AdmissionCreated(ctx context.Context, admission *models.Admission, program *models.Program) {
	n.toStudent(ctx, admission.StudentID, models.NotifTypeAdmission,
		"Admission Created",
		fmt.Sprintf("Your admission for %s has been created with status %s.",
			program.Name, admission.Status))
}

func (n *notifierImpl) AdmissionUpdated(ctx context.Context, admission *models.Admission, program *models.Program) {
	n.toStudent(ctx, admission.StudentID, models.NotifTypeAdmissionUpdate,
		"Admission Updated",
		fmt.Sprintf("Your admission for %s has been updated with status %s.",
			program.Name, admission.Status))
}

func (n *notifierImpl) EnrollmentCreated(ctx context.Context, enrollment *models.Enrollment, course *models.Course) {
	n.toStudent(ctx, enrollment.StudentID, models.NotifTypeEnrollment,
		"Course Enrollment Successful",
		fmt.Sprintf("You have been enrolled in %s for Semester %d (%d).",
			course.Code, enrollment.Semester, enrollment.Year))
}

func (n *notifierImpl) FeeCreated(ctx context.Context, fee *models.Fee) {
	n.toStudent(ctx, fee.StudentID, models.NotifTypeFee,
		"New Fee Assigned",
		fmt.Sprintf("A new fee of %.2f is due on %s.", fee.Amount, fee.DueDate.Format("2006-01-02")))
}

func (n *notifierImpl) FeeOverdue(ctx context.Context, fee *models.Fee) {
	n.toStudent(ctx, fee.StudentID, models.NotifTypeFee,
		"Fee Overdue",
		fmt.Sprintf("Your fee of %.2f is overdue!", fee.Amount))
}

// FeePaid resolves any outstanding fee reminders for the student, then
// records a receipt that is already read and auto-resolved so it shows up
// in their history without demanding attention.
func (n *notifierImpl) FeePaid(ctx context.Context, fee *models.Fee) {
	if err := n.notificationRepo.ResolveUnreadFeeNotifications(ctx, fee.StudentID); err != nil {
		logger.Error().Err(err).Int64("student_id", fee.StudentID).
			Msg("Failed to resolve outstanding fee notifications")
	}

	notif := &models.Notification{
		RecipientStudentID: &fee.StudentID,
		NotifType:          models.NotifTypeFee,
		Title:              "Fee Paid",
		Message:            fmt.Sprintf("Your fee of %.2f has been paid.", fee.Amount),
		Read:               true,
		AutoResolved:       true,
	}
	if err := n.notificationRepo.Create(ctx, notif); err != nil {
		logger.Error().Err(err).Int64("student_id", fee.StudentID).
			Msg("Failed to write fee receipt notification")
	}
}

// ExamScheduled fans out to every active student in the course's program.
func (n *notifierImpl) ExamScheduled(ctx context.Context, exam *models.Exam, course *models.Course) {
	studentIDs, err := n.studentRepo.ListIDsByProgram(ctx, course.ProgramID)
	if err != nil {
		logger.Error().Err(err).Int64("program_id", course.ProgramID).
			Msg("Failed to list students for exam notification")
		return
	}

	message := fmt.Sprintf("The %s exam for %s is scheduled on %s.",
		exam.ExamType, course.Title, exam.Date.Format("2006-01-02"))

	notifications := make([]*models.Notification, 0, len(studentIDs))
	for _, id := range studentIDs {
		studentID := id
		notifications = append(notifications, &models.Notification{
			RecipientStudentID: &studentID,
			NotifType:          models.NotifTypeExam,
			Title:              "New Exam Scheduled",
			Message:            message,
		})
	}

	if err := n.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		logger.Error().Err(err).Int64("exam_id", exam.ID).
			Msg("Failed to write exam notifications")
	}
}

func (n *notifierImpl) AttendanceMarked(ctx context.Context, record *models.Attendance, course *models.Course) {
	n.toStudent(ctx, record.StudentID, models.NotifTypeAttendance,
		"Attendance Recorded",
		fmt.Sprintf("Your attendance for %s on %s has been marked as %s.",
			course.Code, record.Date.Format("2006-01-02"), record.Status))
}

func (n *notifierImpl) GradePosted(ctx context.Context, grade *models.Grade, exam *models.Exam, course *models.Course) {
	n.toStudent(ctx, grade.StudentID, models.NotifTypeGrade,
		fmt.Sprintf("%s Exam Results", exam.ExamType),
		fmt.Sprintf("You scored %.2f in %s.", grade.ObtainedMarks, course.Title))
}

func (n *notifierImpl) StaffCreated(ctx context.Context, staff *models.Staff, department *models.Department) {
	place := "the institution"
	if department != nil {
		place = department.Name
	}
	n.toStaff(ctx, staff.ID, models.NotifTypeStaff,
		"Welcome to Staff",
		fmt.Sprintf("Welcome %s to %s.", staff.FullName, place))
}

func (n *notifierImpl) StaffUpdated(ctx context.Context, staff *models.Staff) {
	n.toStaff(ctx, staff.ID, models.NotifTypeStaff,
		"Staff Record Updated",
		"Your staff record has been updated.")
}
