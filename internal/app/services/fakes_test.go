package services

import (
	"context"
	"time"

	"github.com/kaanb/campuscore/internal/app/models"
	"github.com/kaanb/campuscore/internal/app/repositories"
	"github.com/kaanb/campuscore/internal/pkg/apperrors"
)

// In-memory repository fakes keyed by ID. Only the behavior the services
// depend on is implemented.

type fakeStudentRepo struct {
	students  map[int64]*models.Student
	nextID    int64
	createErr error
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{students: map[int64]*models.Student{}, nextID: 1}
	for _, s := range students {
		if s.ID >= repo.nextID {
			repo.nextID = s.ID + 1
		}
		repo.students[s.ID] = s
	}
	return repo
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	if r.createErr != nil {
		return r.createErr
	}
	student.ID = r.nextID
	r.nextID++
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (r *fakeStudentRepo) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, student := range r.students {
		if student.UserID == userID {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) List(_ context.Context, _ repositories.StudentFilter, _, _ int) ([]*models.Student, int64, error) {
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	r.students[student.ID] = student
	return nil
}

func (r *fakeStudentRepo) Deactivate(_ context.Context, id int64) error {
	student, ok := r.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.IsActive = false
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

func (r *fakeStudentRepo) BulkCreate(ctx context.Context, students []*models.Student) error {
	for _, s := range students {
		if err := r.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeStudentRepo) BulkUpdate(_ context.Context, students []*models.Student) ([]*models.Student, error) {
	updated := make([]*models.Student, 0, len(students))
	for _, s := range students {
		if _, ok := r.students[s.ID]; !ok {
			continue
		}
		r.students[s.ID] = s
		updated = append(updated, s)
	}
	return updated, nil
}

func (r *fakeStudentRepo) ListIDsByProgram(_ context.Context, programID int64) ([]int64, error) {
	var ids []int64
	for _, s := range r.students {
		if s.ProgramID == programID && s.IsActive {
			ids = append(ids, s.ID)
		}
	}
	return ids, nil
}

type fakeProgramRepo struct {
	programs map[int64]*models.Program
}

func newFakeProgramRepo(programs ...*models.Program) *fakeProgramRepo {
	repo := &fakeProgramRepo{programs: map[int64]*models.Program{}}
	for _, p := range programs {
		repo.programs[p.ID] = p
	}
	return repo
}

func (r *fakeProgramRepo) Create(_ context.Context, program *models.Program) error {
	r.programs[program.ID] = program
	return nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id int64) (*models.Program, error) {
	program, ok := r.programs[id]
	if !ok {
		return nil, apperrors.ErrProgramNotFound
	}
	return program, nil
}

func (r *fakeProgramRepo) List(_ context.Context, _ repositories.ProgramFilter, _, _ int) ([]*models.Program, int64, error) {
	return nil, 0, nil
}

func (r *fakeProgramRepo) Update(_ context.Context, program *models.Program) error {
	r.programs[program.ID] = program
	return nil
}

func (r *fakeProgramRepo) Delete(_ context.Context, id int64) error {
	delete(r.programs, id)
	return nil
}

type fakeCourseRepo struct {
	courses map[int64]*models.Course
}

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	repo := &fakeCourseRepo{courses: map[int64]*models.Course{}}
	for _, c := range courses {
		repo.courses[c.ID] = c
	}
	return repo
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (r *fakeCourseRepo) List(_ context.Context, _ repositories.CourseFilter, _, _ int) ([]*models.Course, int64, error) {
	return nil, 0, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	r.courses[course.ID] = course
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	delete(r.courses, id)
	return nil
}

func (r *fakeCourseRepo) BulkCreate(ctx context.Context, courses []*models.Course) error {
	for _, c := range courses {
		if err := r.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeCourseRepo) BulkUpdate(_ context.Context, courses []*models.Course) ([]*models.Course, error) {
	updated := make([]*models.Course, 0, len(courses))
	for _, c := range courses {
		if _, ok := r.courses[c.ID]; !ok {
			continue
		}
		r.courses[c.ID] = c
		updated = append(updated, c)
	}
	return updated, nil
}

type fakeEnrollmentRepo struct {
	enrollments map[int64]*models.Enrollment
	nextID      int64
	createErr   error
}

func newFakeEnrollmentRepo(enrollments ...*models.Enrollment) *fakeEnrollmentRepo {
	repo := &fakeEnrollmentRepo{enrollments: map[int64]*models.Enrollment{}, nextID: 1}
	for _, e := range enrollments {
		if e.ID >= repo.nextID {
			repo.nextID = e.ID + 1
		}
		repo.enrollments[e.ID] = e
	}
	return repo
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	if r.createErr != nil {
		return r.createErr
	}
	enrollment.ID = r.nextID
	r.nextID++
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := r.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (r *fakeEnrollmentRepo) List(_ context.Context, _ repositories.EnrollmentFilter, _, _ int) ([]*models.Enrollment, int64, error) {
	return nil, 0, nil
}

func (r *fakeEnrollmentRepo) Update(_ context.Context, enrollment *models.Enrollment) error {
	if _, ok := r.enrollments[enrollment.ID]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id int64) error {
	delete(r.enrollments, id)
	return nil
}

type fakeExamRepo struct {
	exams  map[int64]*models.Exam
	nextID int64
}

func newFakeExamRepo(exams ...*models.Exam) *fakeExamRepo {
	repo := &fakeExamRepo{exams: map[int64]*models.Exam{}, nextID: 1}
	for _, e := range exams {
		if e.ID >= repo.nextID {
			repo.nextID = e.ID + 1
		}
		repo.exams[e.ID] = e
	}
	return repo
}

func (r *fakeExamRepo) Create(_ context.Context, exam *models.Exam) error {
	exam.ID = r.nextID
	r.nextID++
	r.exams[exam.ID] = exam
	return nil
}

func (r *fakeExamRepo) GetByID(_ context.Context, id int64) (*models.Exam, error) {
	exam, ok := r.exams[id]
	if !ok {
		return nil, apperrors.ErrExamNotFound
	}
	return exam, nil
}

func (r *fakeExamRepo) List(_ context.Context, _ repositories.ExamFilter, _, _ int) ([]*models.Exam, int64, error) {
	return nil, 0, nil
}

func (r *fakeExamRepo) Update(_ context.Context, exam *models.Exam) error {
	if _, ok := r.exams[exam.ID]; !ok {
		return apperrors.ErrExamNotFound
	}
	r.exams[exam.ID] = exam
	return nil
}

func (r *fakeExamRepo) Delete(_ context.Context, id int64) error {
	delete(r.exams, id)
	return nil
}

type fakeGradeRepo struct {
	grades map[int64]*models.Grade
	nextID int64
}

func newFakeGradeRepo(grades ...*models.Grade) *fakeGradeRepo {
	repo := &fakeGradeRepo{grades: map[int64]*models.Grade{}, nextID: 1}
	for _, g := range grades {
		if g.ID >= repo.nextID {
			repo.nextID = g.ID + 1
		}
		repo.grades[g.ID] = g
	}
	return repo
}

func (r *fakeGradeRepo) Create(_ context.Context, grade *models.Grade) error {
	grade.ID = r.nextID
	r.nextID++
	r.grades[grade.ID] = grade
	return nil
}

func (r *fakeGradeRepo) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	grade, ok := r.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	return grade, nil
}

func (r *fakeGradeRepo) List(_ context.Context, _ repositories.GradeFilter, _, _ int) ([]*models.Grade, int64, error) {
	return nil, 0, nil
}

func (r *fakeGradeRepo) Update(_ context.Context, grade *models.Grade) error {
	if _, ok := r.grades[grade.ID]; !ok {
		return apperrors.ErrGradeNotFound
	}
	r.grades[grade.ID] = grade
	return nil
}

func (r *fakeGradeRepo) Delete(_ context.Context, id int64) error {
	delete(r.grades, id)
	return nil
}

type fakeFeeRepo struct {
	fees   map[int64]*models.Fee
	nextID int64
}

func newFakeFeeRepo(fees ...*models.Fee) *fakeFeeRepo {
	repo := &fakeFeeRepo{fees: map[int64]*models.Fee{}, nextID: 1}
	for _, f := range fees {
		if f.ID >= repo.nextID {
			repo.nextID = f.ID + 1
		}
		repo.fees[f.ID] = f
	}
	return repo
}

func (r *fakeFeeRepo) Create(_ context.Context, fee *models.Fee) error {
	fee.ID = r.nextID
	r.nextID++
	r.fees[fee.ID] = fee
	return nil
}

func (r *fakeFeeRepo) GetByID(_ context.Context, id int64) (*models.Fee, error) {
	fee, ok := r.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	copied := *fee
	return &copied, nil
}

func (r *fakeFeeRepo) List(_ context.Context, _ repositories.FeeFilter, _, _ int) ([]*models.Fee, int64, error) {
	return nil, 0, nil
}

func (r *fakeFeeRepo) Update(_ context.Context, fee *models.Fee) error {
	if _, ok := r.fees[fee.ID]; !ok {
		return apperrors.ErrFeeNotFound
	}
	r.fees[fee.ID] = fee
	return nil
}

func (r *fakeFeeRepo) MarkPaid(_ context.Context, id int64, paymentDate time.Time) (*models.Fee, error) {
	fee, ok := r.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	fee.IsPaid = true
	fee.PaymentDate = &paymentDate
	copied := *fee
	return &copied, nil
}

func (r *fakeFeeRepo) Delete(_ context.Context, id int64) error {
	delete(r.fees, id)
	return nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	resolvedFor   []int64
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	notification.ID = int64(len(r.notifications) + 1)
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) CreateBatch(ctx context.Context, notifications []*models.Notification) error {
	for _, n := range notifications {
		if err := r.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id int64) (*models.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, apperrors.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) List(_ context.Context, filter repositories.NotificationFilter, _, _ int) ([]*models.Notification, int64, error) {
	var out []*models.Notification
	for _, n := range r.notifications {
		if filter.RecipientStudentID != nil {
			if n.RecipientStudentID == nil || *n.RecipientStudentID != *filter.RecipientStudentID {
				continue
			}
		}
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id int64) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) ResolveUnreadFeeNotifications(_ context.Context, studentID int64) error {
	r.resolvedFor = append(r.resolvedFor, studentID)
	for _, n := range r.notifications {
		if n.RecipientStudentID != nil && *n.RecipientStudentID == studentID &&
			n.NotifType == models.NotifTypeFee && !n.Read {
			n.Read = true
			n.AutoResolved = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id int64) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

type fakeStatsRepo struct {
	start  time.Time
	end    time.Time
	counts repositories.DashboardCounts
}

func (r *fakeStatsRepo) Counts(_ context.Context, start, end time.Time) (*repositories.DashboardCounts, error) {
	r.start = start
	r.end = end
	copied := r.counts
	return &copied, nil
}

// recordingNotifier captures every hook invocation by name.
type recordingNotifier struct {
	calls          []string
	examProgramIDs []int64
}

func (n *recordingNotifier) AdmissionCreated(context.Context, *models.Admission, *models.Program) {
	n.calls = append(n.calls, "AdmissionCreated")
}

func (n *recordingNotifier) AdmissionUpdated(context.Context, *models.Admission, *models.Program) {
	n.calls = append(n.calls, "AdmissionUpdated")
}

func (n *recordingNotifier) EnrollmentCreated(context.Context, *models.Enrollment, *models.Course) {
	n.calls = append(n.calls, "EnrollmentCreated")
}

func (n *recordingNotifier) FeeCreated(context.Context, *models.Fee) {
	n.calls = append(n.calls, "FeeCreated")
}

func (n *recordingNotifier) FeeOverdue(context.Context, *models.Fee) {
	n.calls = append(n.calls, "FeeOverdue")
}

func (n *recordingNotifier) FeePaid(context.Context, *models.Fee) {
	n.calls = append(n.calls, "FeePaid")
}

func (n *recordingNotifier) ExamScheduled(_ context.Context, _ *models.Exam, course *models.Course) {
	n.calls = append(n.calls, "ExamScheduled")
	n.examProgramIDs = append(n.examProgramIDs, course.ProgramID)
}

func (n *recordingNotifier) AttendanceMarked(context.Context, *models.Attendance, *models.Course) {
	n.calls = append(n.calls, "AttendanceMarked")
}

func (n *recordingNotifier) GradePosted(context.Context, *models.Grade, *models.Exam, *models.Course) {
	n.calls = append(n.calls, "GradePosted")
}

func (n *recordingNotifier) StaffCreated(context.Context, *models.Staff, *models.Department) {
	n.calls = append(n.calls, "StaffCreated")
}

func (n *recordingNotifier) StaffUpdated(context.Context, *models.Staff) {
	n.calls = append(n.calls, "StaffUpdated")
}

func (n *recordingNotifier) called(name string) bool {
	for _, c := range n.calls {
		if c == name {
			return true
		}
	}
	return false
}
