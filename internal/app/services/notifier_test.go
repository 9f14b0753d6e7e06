package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
)

func TestNotifierFeePaid(t *testing.T) {
	studentID := int64(7)
	otherID := int64(8)
	repo := &fakeNotificationRepo{}
	// Two outstanding reminders for the payer, one for someone else.
	repo.notifications = []*models.Notification{
		{ID: 1, RecipientStudentID: &studentID, NotifType: models.NotifTypeFee},
		{ID: 2, RecipientStudentID: &studentID, NotifType: models.NotifTypeFee},
		{ID: 3, RecipientStudentID: &otherID, NotifType: models.NotifTypeFee},
	}

	notifier := NewNotifier(repo, newFakeStudentRepo())
	notifier.FeePaid(context.Background(), &models.Fee{ID: 1, StudentID: studentID, Amount: 500})

	if len(repo.resolvedFor) != 1 || repo.resolvedFor[0] != studentID {
		t.Fatalf("resolved for %v, want [%d]", repo.resolvedFor, studentID)
	}
	for _, n := range repo.notifications[:2] {
		if !n.Read || !n.AutoResolved {
			t.Errorf("reminder %d not auto-resolved", n.ID)
		}
	}
	if repo.notifications[2].Read {
		t.Error("another student's reminder was resolved")
	}

	receipt := repo.notifications[len(repo.notifications)-1]
	if receipt.Title != "Fee Paid" {
		t.Errorf("receipt title = %q, want %q", receipt.Title, "Fee Paid")
	}
	if !receipt.Read || !receipt.AutoResolved {
		t.Errorf("receipt read=%v auto_resolved=%v, want both true", receipt.Read, receipt.AutoResolved)
	}
	if receipt.RecipientStudentID == nil || *receipt.RecipientStudentID != studentID {
		t.Error("receipt not addressed to the payer")
	}
}

func TestNotifierFeeReminders(t *testing.T) {
	fee := &models.Fee{ID: 1, StudentID: 7, Amount: 1500.50,
		DueDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("new fee", func(t *testing.T) {
		repo := &fakeNotificationRepo{}
		notifier := NewNotifier(repo, newFakeStudentRepo())
		notifier.FeeCreated(context.Background(), fee)

		if len(repo.notifications) != 1 {
			t.Fatalf("wrote %d notifications, want 1", len(repo.notifications))
		}
		n := repo.notifications[0]
		if n.Title != "New Fee Assigned" {
			t.Errorf("title = %q, want %q", n.Title, "New Fee Assigned")
		}
		if !strings.Contains(n.Message, "1500.50") || !strings.Contains(n.Message, "2025-09-01") {
			t.Errorf("message %q missing amount or due date", n.Message)
		}
	})

	t.Run("overdue fee", func(t *testing.T) {
		repo := &fakeNotificationRepo{}
		notifier := NewNotifier(repo, newFakeStudentRepo())
		notifier.FeeOverdue(context.Background(), fee)

		if len(repo.notifications) != 1 {
			t.Fatalf("wrote %d notifications, want 1", len(repo.notifications))
		}
		n := repo.notifications[0]
		if n.Title != "Fee Overdue" {
			t.Errorf("title = %q, want %q", n.Title, "Fee Overdue")
		}
		if n.NotifType != models.NotifTypeFee {
			t.Errorf("notif type = %q, want %q", n.NotifType, models.NotifTypeFee)
		}
		if !strings.Contains(n.Message, "overdue") {
			t.Errorf("message %q does not mention overdue", n.Message)
		}
	})
}

func TestNotifierAdmissionHooks(t *testing.T) {
	repo := &fakeNotificationRepo{}
	notifier := NewNotifier(repo, newFakeStudentRepo())

	admission := &models.Admission{ID: 1, StudentID: 7, ProgramID: 3, Status: models.AdmissionPending}
	program := &models.Program{ID: 3, Name: "BS Computer Science"}

	notifier.AdmissionCreated(context.Background(), admission, program)
	admission.Status = models.AdmissionApproved
	notifier.AdmissionUpdated(context.Background(), admission, program)

	if len(repo.notifications) != 2 {
		t.Fatalf("wrote %d notifications, want 2", len(repo.notifications))
	}
	created, updated := repo.notifications[0], repo.notifications[1]
	if created.Title != "Admission Created" || created.NotifType != models.NotifTypeAdmission {
		t.Errorf("created = (%q, %q), want (Admission Created, %q)",
			created.Title, created.NotifType, models.NotifTypeAdmission)
	}
	if !strings.Contains(created.Message, "BS Computer Science") || !strings.Contains(created.Message, "Pending") {
		t.Errorf("created message %q missing program name or status", created.Message)
	}
	if updated.Title != "Admission Updated" || updated.NotifType != models.NotifTypeAdmissionUpdate {
		t.Errorf("updated = (%q, %q), want (Admission Updated, %q)",
			updated.Title, updated.NotifType, models.NotifTypeAdmissionUpdate)
	}
	if !strings.Contains(updated.Message, "Approved") {
		t.Errorf("updated message %q missing new status", updated.Message)
	}
}

func TestNotifierEnrollmentCreated(t *testing.T) {
	repo := &fakeNotificationRepo{}
	notifier := NewNotifier(repo, newFakeStudentRepo())

	enrollment := &models.Enrollment{ID: 1, StudentID: 7, CourseID: 2, Semester: 3, Year: 2025}
	course := &models.Course{ID: 2, Code: "CS-201", Title: "Data Structures"}
	notifier.EnrollmentCreated(context.Background(), enrollment, course)

	if len(repo.notifications) != 1 {
		t.Fatalf("wrote %d notifications, want 1", len(repo.notifications))
	}
	n := repo.notifications[0]
	if n.Title != "Course Enrollment Successful" {
		t.Errorf("title = %q, want %q", n.Title, "Course Enrollment Successful")
	}
	if !strings.Contains(n.Message, "CS-201") || !strings.Contains(n.Message, "Semester 3") {
		t.Errorf("message %q missing course code or semester", n.Message)
	}
}

func TestNotifierExamScheduled(t *testing.T) {
	students := newFakeStudentRepo(
		&models.Student{ID: 1, ProgramID: 3, IsActive: true},
		&models.Student{ID: 2, ProgramID: 3, IsActive: true},
		&models.Student{ID: 4, ProgramID: 3, IsActive: false}, // inactive, skipped
		&models.Student{ID: 5, ProgramID: 9, IsActive: true},  // other program
	)
	repo := &fakeNotificationRepo{}
	notifier := NewNotifier(repo, students)

	exam := &models.Exam{
		ID:       11,
		CourseID: 2,
		ExamType: models.ExamFinal,
		Date:     time.Date(2025, 12, 20, 9, 0, 0, 0, time.UTC),
	}
	course := &models.Course{ID: 2, ProgramID: 3, Code: "CS-201", Title: "Data Structures"}
	notifier.ExamScheduled(context.Background(), exam, course)

	if len(repo.notifications) != 2 {
		t.Fatalf("wrote %d notifications, want 2", len(repo.notifications))
	}
	seen := map[int64]bool{}
	for _, n := range repo.notifications {
		if n.NotifType != models.NotifTypeExam {
			t.Errorf("notif type = %q, want %q", n.NotifType, models.NotifTypeExam)
		}
		if n.Title != "New Exam Scheduled" {
			t.Errorf("title = %q, want %q", n.Title, "New Exam Scheduled")
		}
		if !strings.Contains(n.Message, "Data Structures") {
			t.Errorf("message %q missing course title", n.Message)
		}
		if n.RecipientStudentID == nil {
			t.Fatal("exam notification without a student recipient")
		}
		seen[*n.RecipientStudentID] = true
	}
	if !seen[1] || !seen[2] {
		t.Errorf("recipients = %v, want students 1 and 2", seen)
	}
}

func TestNotifierAttendanceMarked(t *testing.T) {
	repo := &fakeNotificationRepo{}
	notifier := NewNotifier(repo, newFakeStudentRepo())

	record := &models.Attendance{ID: 1, StudentID: 7, CourseID: 2,
		Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Status: models.AttendanceAbsent}
	course := &models.Course{ID: 2, Code: "CS-201"}
	notifier.AttendanceMarked(context.Background(), record, course)

	if len(repo.notifications) != 1 {
		t.Fatalf("wrote %d notifications, want 1", len(repo.notifications))
	}
	n := repo.notifications[0]
	if !strings.Contains(n.Message, "CS-201") || !strings.Contains(n.Message, "Absent") {
		t.Errorf("message %q missing course code or status", n.Message)
	}
}

func TestNotifierGradePosted(t *testing.T) {
	repo := &fakeNotificationRepo{}
	notifier := NewNotifier(repo, newFakeStudentRepo())

	grade := &models.Grade{ID: 1, StudentID: 7, ExamID: 11, ObtainedMarks: 42.5}
	exam := &models.Exam{ID: 11, CourseID: 2, ExamType: models.ExamMidterm}
	course := &models.Course{ID: 2, Title: "Data Structures"}
	notifier.GradePosted(context.Background(), grade, exam, course)

	if len(repo.notifications) != 1 {
		t.Fatalf("wrote %d notifications, want 1", len(repo.notifications))
	}
	n := repo.notifications[0]
	if n.Title != "Midterm Exam Results" {
		t.Errorf("title = %q, want %q", n.Title, "Midterm Exam Results")
	}
	if !strings.Contains(n.Message, "42.50") || !strings.Contains(n.Message, "Data Structures") {
		t.Errorf("message %q missing marks or course title", n.Message)
	}
}

func TestNotifierStaffHooks(t *testing.T) {
	repo := &fakeNotificationRepo{}
	notifier := NewNotifier(repo, newFakeStudentRepo())

	staff := &models.Staff{ID: 5, FullName: "Bilal Ahmed"}
	notifier.StaffCreated(context.Background(), staff, &models.Department{ID: 1, Name: "Computer Science"})
	notifier.StaffUpdated(context.Background(), staff)

	if len(repo.notifications) != 2 {
		t.Fatalf("wrote %d notifications, want 2", len(repo.notifications))
	}
	for _, n := range repo.notifications {
		if n.RecipientStaffID == nil || *n.RecipientStaffID != 5 {
			t.Error("staff notification not addressed to the staff member")
		}
		if n.NotifType != models.NotifTypeStaff {
			t.Errorf("notif type = %q, want %q", n.NotifType, models.NotifTypeStaff)
		}
	}
	welcome, update := repo.notifications[0], repo.notifications[1]
	if welcome.Title != "Welcome to Staff" {
		t.Errorf("welcome title = %q, want %q", welcome.Title, "Welcome to Staff")
	}
	if !strings.Contains(welcome.Message, "Computer Science") {
		t.Errorf("welcome message %q missing department name", welcome.Message)
	}
	if update.Title != "Staff Record Updated" {
		t.Errorf("update title = %q, want %q", update.Title, "Staff Record Updated")
	}
}

func TestNotifierStaffCreatedWithoutDepartment(t *testing.T) {
	repo := &fakeNotificationRepo{}
	notifier := NewNotifier(repo, newFakeStudentRepo())

	notifier.StaffCreated(context.Background(), &models.Staff{ID: 5, FullName: "Bilal Ahmed"}, nil)

	if len(repo.notifications) != 1 {
		t.Fatalf("wrote %d notifications, want 1", len(repo.notifications))
	}
	if !strings.Contains(repo.notifications[0].Message, "the institution") {
		t.Errorf("message %q should fall back to the institution", repo.notifications[0].Message)
	}
}
