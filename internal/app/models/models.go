package models

// Role defines the profile role carried in the JWT claims and stored on users.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleStaff   Role = "Staff"
	RoleStudent Role = "Student"
)

// ProgramType defines the degree level of a program.
type ProgramType string

const (
	ProgramBachelor  ProgramType = "BS"
	ProgramMaster    ProgramType = "MS"
	ProgramDoctorate ProgramType = "PhD"
	ProgramDiploma   ProgramType = "Diploma"
)

// Gender values accepted on student records.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// StaffType distinguishes teaching from non-teaching staff.
type StaffType string

const (
	StaffTeaching    StaffType = "Teaching"
	StaffNonTeaching StaffType = "Non-Teaching"
)

// AdmissionStatus is the review state of an admission application.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "Pending"
	AdmissionApproved AdmissionStatus = "Approved"
	AdmissionRejected AdmissionStatus = "Rejected"
)

// AttendanceStatus is the per-day attendance mark.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
)

// ExamType defines the kind of assessment an exam row represents.
type ExamType string

const (
	ExamMidterm    ExamType = "Midterm"
	ExamFinal      ExamType = "Final"
	ExamQuiz       ExamType = "Quiz"
	ExamAssignment ExamType = "Assignment"
)

// Notification types written by the post-save hooks.
const (
	NotifTypeAdmission       = "Admission"
	NotifTypeAdmissionUpdate = "Admission Update"
	NotifTypeEnrollment      = "Enrollment"
	NotifTypeFee             = "Fee"
	NotifTypeExam            = "Exam"
	NotifTypeAttendance      = "Attendance"
	NotifTypeGrade           = "Grade"
	NotifTypeStaff           = "Staff"
)
