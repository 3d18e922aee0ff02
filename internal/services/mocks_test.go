package services

import (
	"context"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
)

func testLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// mockRepository is an in-memory Repository for service tests. Lookups that
// find nothing report gorm's record-not-found, matching the real layer. The
// create counters let tests assert how many records an operation produced.
type mockRepository struct {
	nextID uint

	accounts  map[uint]*models.Account
	profiles  map[uint]*models.Profile // keyed by account ID
	students  map[uint]*models.Student // keyed by account ID
	teachers  map[uint]*models.Teacher // keyed by account ID
	companies map[uint]*models.Company // keyed by account ID
	courses   map[uint]*models.Course
	jobs      map[uint]*models.Job

	enrollments map[uint][]uint // student ID -> course IDs
	postedJobs  map[uint][]uint // company ID -> job IDs

	profileCreates int
	studentCreates int
	teacherCreates int
	companyCreates int
	statUpdates    []repositories.TeacherStats
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		accounts:    map[uint]*models.Account{},
		profiles:    map[uint]*models.Profile{},
		students:    map[uint]*models.Student{},
		teachers:    map[uint]*models.Teacher{},
		companies:   map[uint]*models.Company{},
		courses:     map[uint]*models.Course{},
		jobs:        map[uint]*models.Job{},
		enrollments: map[uint][]uint{},
		postedJobs:  map[uint][]uint{},
	}
}

func (m *mockRepository) id() uint {
	m.nextID++
	return m.nextID
}

// ===== SEEDING HELPERS =====

func (m *mockRepository) addAccount(username string) *models.Account {
	account := &models.Account{ID: m.id(), Username: username, Email: username + "@example.com"}
	m.accounts[account.ID] = account
	return account
}

func (m *mockRepository) addProfile(accountID uint, role models.UserRole) *models.Profile {
	profile := &models.Profile{ID: m.id(), AccountID: accountID, Role: role}
	m.profiles[accountID] = profile
	return profile
}

func (m *mockRepository) addStudent(accountID uint) *models.Student {
	student := &models.Student{ID: m.id(), AccountID: accountID}
	m.students[accountID] = student
	return student
}

func (m *mockRepository) addTeacher(accountID uint) *models.Teacher {
	teacher := &models.Teacher{ID: m.id(), AccountID: accountID}
	m.teachers[accountID] = teacher
	return teacher
}

func (m *mockRepository) addCompany(accountID uint, name string) *models.Company {
	company := &models.Company{ID: m.id(), AccountID: accountID, CompanyName: name}
	m.companies[accountID] = company
	return company
}

func (m *mockRepository) addCourse(title string, instructorID uint) *models.Course {
	id := instructorID
	course := &models.Course{ID: m.id(), Title: title, InstructorID: &id}
	m.courses[course.ID] = course
	return course
}

func (m *mockRepository) enroll(studentID, courseID uint) {
	m.enrollments[studentID] = append(m.enrollments[studentID], courseID)
}

// ===== REPOSITORY INTERFACE =====

func (m *mockRepository) Account() repositories.AccountRepository { return &mockAccountRepo{m} }
func (m *mockRepository) Profile() repositories.ProfileRepository { return &mockProfileRepo{m} }
func (m *mockRepository) Student() repositories.StudentRepository { return &mockStudentRepo{m} }
func (m *mockRepository) Teacher() repositories.TeacherRepository { return &mockTeacherRepo{m} }
func (m *mockRepository) Company() repositories.CompanyRepository { return &mockCompanyRepo{m} }
func (m *mockRepository) Course() repositories.CourseRepository   { return &mockCourseRepo{m} }
func (m *mockRepository) Job() repositories.JobRepository         { return &mockJobRepo{m} }
func (m *mockRepository) Content() repositories.ContentRepository { return &mockContentRepo{m} }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== ACCOUNT =====

type mockAccountRepo struct{ m *mockRepository }

func (r *mockAccountRepo) Create(ctx context.Context, tx *gorm.DB, account *models.Account) error {
	account.ID = r.m.id()
	r.m.accounts[account.ID] = account
	return nil
}

func (r *mockAccountRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Account, error) {
	if account, ok := r.m.accounts[id]; ok {
		return account, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAccountRepo) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*models.Account, error) {
	for _, account := range r.m.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAccountRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.Account, error) {
	for _, account := range r.m.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAccountRepo) UpdateEmail(ctx context.Context, tx *gorm.DB, id uint, email string) error {
	if account, ok := r.m.accounts[id]; ok {
		account.Email = email
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *mockAccountRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	delete(r.m.accounts, id)
	return nil
}

// ===== PROFILE =====

type mockProfileRepo struct{ m *mockRepository }

func (r *mockProfileRepo) Create(ctx context.Context, tx *gorm.DB, profile *models.Profile) error {
	profile.ID = r.m.id()
	r.m.profiles[profile.AccountID] = profile
	r.m.profileCreates++
	return nil
}

func (r *mockProfileRepo) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Profile, error) {
	if profile, ok := r.m.profiles[accountID]; ok {
		return profile, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockProfileRepo) Update(ctx context.Context, tx *gorm.DB, profile *models.Profile) error {
	r.m.profiles[profile.AccountID] = profile
	return nil
}

func (r *mockProfileRepo) UpdatePicture(ctx context.Context, tx *gorm.DB, accountID uint, path string) error {
	if profile, ok := r.m.profiles[accountID]; ok {
		profile.PicturePath = path
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ===== STUDENT =====

type mockStudentRepo struct{ m *mockRepository }

func (r *mockStudentRepo) Create(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	student.ID = r.m.id()
	r.m.students[student.AccountID] = student
	r.m.studentCreates++
	return nil
}

func (r *mockStudentRepo) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Student, error) {
	if student, ok := r.m.students[accountID]; ok {
		return student, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockStudentRepo) GetEnrolledCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error) {
	courses := []*models.Course{}
	for _, courseID := range r.m.enrollments[studentID] {
		if course, ok := r.m.courses[courseID]; ok {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (r *mockStudentRepo) GetSavedCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error) {
	return []*models.Course{}, nil
}

func (r *mockStudentRepo) IsCourseSaved(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error) {
	return false, nil
}

func (r *mockStudentRepo) SaveCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error {
	return nil
}

func (r *mockStudentRepo) UnsaveCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error {
	return nil
}

func (r *mockStudentRepo) Enroll(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error {
	r.m.enroll(studentID, courseID)
	return nil
}

func (r *mockStudentRepo) GetByEnrolledCourses(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*models.Student, error) {
	wanted := make(map[uint]struct{}, len(courseIDs))
	for _, id := range courseIDs {
		wanted[id] = struct{}{}
	}

	students := []*models.Student{}
	for _, student := range r.m.students {
		for _, courseID := range r.m.enrollments[student.ID] {
			if _, ok := wanted[courseID]; ok {
				students = append(students, student)
				break
			}
		}
	}
	return students, nil
}

// ===== TEACHER =====

type mockTeacherRepo struct{ m *mockRepository }

func (r *mockTeacherRepo) Create(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	teacher.ID = r.m.id()
	r.m.teachers[teacher.AccountID] = teacher
	r.m.teacherCreates++
	return nil
}

func (r *mockTeacherRepo) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Teacher, error) {
	if teacher, ok := r.m.teachers[accountID]; ok {
		return teacher, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockTeacherRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Teacher, error) {
	for _, teacher := range r.m.teachers {
		if teacher.ID == id {
			return teacher, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockTeacherRepo) Update(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	r.m.teachers[teacher.AccountID] = teacher
	return nil
}

func (r *mockTeacherRepo) UpdateStats(ctx context.Context, tx *gorm.DB, teacherID uint, stats repositories.TeacherStats) error {
	for _, teacher := range r.m.teachers {
		if teacher.ID == teacherID {
			teacher.TotalCourses = stats.TotalCourses
			teacher.TotalStudents = stats.TotalStudents
			teacher.StudentProgressAvg = stats.StudentProgressAvg
		}
	}
	r.m.statUpdates = append(r.m.statUpdates, stats)
	return nil
}

// ===== COMPANY =====

type mockCompanyRepo struct{ m *mockRepository }

func (r *mockCompanyRepo) Create(ctx context.Context, tx *gorm.DB, company *models.Company) error {
	company.ID = r.m.id()
	r.m.companies[company.AccountID] = company
	r.m.companyCreates++
	return nil
}

func (r *mockCompanyRepo) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Company, error) {
	if company, ok := r.m.companies[accountID]; ok {
		return company, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCompanyRepo) Update(ctx context.Context, tx *gorm.DB, company *models.Company) error {
	r.m.companies[company.AccountID] = company
	return nil
}

func (r *mockCompanyRepo) GetPostedJobs(ctx context.Context, tx *gorm.DB, companyID uint) ([]*models.Job, error) {
	jobs := []*models.Job{}
	for _, jobID := range r.m.postedJobs[companyID] {
		if job, ok := r.m.jobs[jobID]; ok {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *mockCompanyRepo) AddPostedJob(ctx context.Context, tx *gorm.DB, companyID, jobID uint) error {
	r.m.postedJobs[companyID] = append(r.m.postedJobs[companyID], jobID)
	return nil
}

// ===== COURSE =====

type mockCourseRepo struct{ m *mockRepository }

func (r *mockCourseRepo) Create(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	course.ID = r.m.id()
	r.m.courses[course.ID] = course
	return nil
}

func (r *mockCourseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error) {
	if course, ok := r.m.courses[id]; ok {
		return course, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCourseRepo) List(ctx context.Context, tx *gorm.DB, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	courses := []*models.Course{}
	for _, course := range r.m.courses {
		courses = append(courses, course)
	}
	return courses, int64(len(courses)), nil
}

func (r *mockCourseRepo) ListByInstructor(ctx context.Context, tx *gorm.DB, teacherID uint) ([]*models.Course, error) {
	courses := []*models.Course{}
	for _, course := range r.m.courses {
		if course.InstructorID != nil && *course.InstructorID == teacherID {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (r *mockCourseRepo) ListByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*models.Course, error) {
	courses := []*models.Course{}
	for _, id := range ids {
		if course, ok := r.m.courses[id]; ok {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (r *mockCourseRepo) ExistingIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]struct{}, error) {
	existing := map[uint]struct{}{}
	for _, id := range ids {
		if _, ok := r.m.courses[id]; ok {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}

func (r *mockCourseRepo) Categories(ctx context.Context, tx *gorm.DB) ([]string, error) {
	return []string{}, nil
}

func (r *mockCourseRepo) RelatedByCategory(ctx context.Context, tx *gorm.DB, category string, excludeID uint, limit int) ([]*models.Course, error) {
	return []*models.Course{}, nil
}

func (r *mockCourseRepo) EnrollmentCounts(ctx context.Context, tx *gorm.DB, teacherID uint) ([]repositories.CourseEnrollment, error) {
	return []repositories.CourseEnrollment{}, nil
}

// ===== JOB =====

type mockJobRepo struct{ m *mockRepository }

func (r *mockJobRepo) Create(ctx context.Context, tx *gorm.DB, job *models.Job) error {
	job.ID = r.m.id()
	r.m.jobs[job.ID] = job
	return nil
}

func (r *mockJobRepo) List(ctx context.Context, tx *gorm.DB, filters repositories.JobFilters) ([]*models.Job, int64, error) {
	jobs := []*models.Job{}
	for _, job := range r.m.jobs {
		jobs = append(jobs, job)
	}
	return jobs, int64(len(jobs)), nil
}

// ===== CONTENT =====

type mockContentRepo struct{ m *mockRepository }

func (r *mockContentRepo) ListInstructors(ctx context.Context, tx *gorm.DB) ([]*models.Instructor, error) {
	return []*models.Instructor{}, nil
}

func (r *mockContentRepo) ListTestimonials(ctx context.Context, tx *gorm.DB, limit int) ([]*models.Testimonial, error) {
	return []*models.Testimonial{}, nil
}

func (r *mockContentRepo) ListTeamMembers(ctx context.Context, tx *gorm.DB) ([]*models.TeamMember, error) {
	return []*models.TeamMember{}, nil
}

func (r *mockContentRepo) CreateContact(ctx context.Context, tx *gorm.DB, contact *models.Contact) error {
	return nil
}
