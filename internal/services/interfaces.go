package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/validator"
)

// ===== SERVICE ERRORS =====

var (
	ErrNotFound           = errors.New("resource not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("operation not allowed for this role")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAlreadyExists      = errors.New("resource already exists")
)

// NotFoundError is a not-found condition that carries the destination the
// caller should be redirected to instead of a bare 404 page.
type NotFoundError struct {
	Resource string
	Fallback string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ===== DTOs =====

// AuthResult is returned by signup and login: the session token plus the
// dashboard destination for the account's role.
type AuthResult struct {
	Token       string          `json:"token"`
	Account     *models.Account `json:"account"`
	Role        models.UserRole `json:"role"`
	Destination string          `json:"destination"`
}

// ProfilePage bundles the account, its profile and the role record matching
// the profile's role. Exactly one of Student/Teacher/Company is set.
type ProfilePage struct {
	Account *models.Account `json:"account"`
	Profile *models.Profile `json:"profile"`
	Student *models.Student `json:"student,omitempty"`
	Teacher *models.Teacher `json:"teacher,omitempty"`
	Company *models.Company `json:"company,omitempty"`
}

type StudentHomeData struct {
	Account            *models.Account  `json:"account"`
	EnrolledCourses    []*models.Course `json:"enrolled_courses"`
	SavedCourses       []*models.Course `json:"saved_courses"`
	Progress           ProgressSummary  `json:"progress"`
	RecommendedCourses []*models.Course `json:"recommended_courses"`
}

type TeacherHomeData struct {
	Account     *models.Account                 `json:"account"`
	Teacher     *models.Teacher                 `json:"teacher"`
	Courses     []*models.Course                `json:"courses"`
	Stats       repositories.TeacherStats       `json:"stats"`
	Enrollments []repositories.CourseEnrollment `json:"enrollments"`
}

type CompanyHomeData struct {
	Account *models.Account `json:"account"`
	Company *models.Company `json:"company"`
	Jobs    []*models.Job   `json:"jobs"`
}

type CourseListPage struct {
	Courses        []*models.Course `json:"courses"`
	Total          int64            `json:"total"`
	Categories     []string         `json:"categories"`
	SavedCourseIDs map[uint]bool    `json:"saved_course_ids,omitempty"`
}

type CourseDetailPage struct {
	Course          *models.Course   `json:"course"`
	RelatedCourses  []*models.Course `json:"related_courses"`
	IsSaved         bool             `json:"is_saved"`
	IsEnrolled      bool             `json:"is_enrolled"`
	ProgressPercent *float64         `json:"progress_percent,omitempty"`
}

// CertificateData is rendered for a completed course.
type CertificateData struct {
	StudentName string    `json:"student_name"`
	CourseTitle string    `json:"course_title"`
	Percent     float64   `json:"percent"`
	IssuedAt    time.Time `json:"issued_at"`
}

// RosterEntry is one student row on the teacher's roster.
type RosterEntry struct {
	StudentID      uint      `json:"student_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	CourseCount    int       `json:"course_count"`
	AvgProgress    float64   `json:"avg_progress"`
}

type HomePage struct {
	Courses      []*models.Course      `json:"courses"`
	Testimonials []*models.Testimonial `json:"testimonials"`
}

type AboutPage struct {
	TeamMembers  []*models.TeamMember  `json:"team_members"`
	Testimonials []*models.Testimonial `json:"testimonials"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Signup(ctx context.Context, req validator.SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req validator.LoginRequest) (*AuthResult, error)
}

// ProfileService owns the account/profile/role-record triple. Resolve is the
// self-healing role resolver: it guarantees the profile and the role record
// matching its role both exist before returning.
type ProfileService interface {
	Resolve(ctx context.Context, accountID uint) (models.UserRole, error)
	Get(ctx context.Context, accountID uint) (*ProfilePage, error)
	Update(ctx context.Context, accountID uint, req validator.ProfileUpdateRequest) (*ProfilePage, error)
	UpdateEmail(ctx context.Context, accountID uint, req validator.UpdateEmailRequest) error
	UpdatePicture(ctx context.Context, accountID uint, req validator.UpdatePictureRequest) error
}

// DashboardService routes accounts to the dashboard for their resolved role
// and assembles the per-role home payloads.
type DashboardService interface {
	Route(ctx context.Context, accountID uint) (string, error)
	StudentHome(ctx context.Context, accountID uint) (*StudentHomeData, error)
	TeacherHome(ctx context.Context, accountID uint) (*TeacherHomeData, error)
	CompanyHome(ctx context.Context, accountID uint) (*CompanyHomeData, error)
}

type CourseService interface {
	List(ctx context.Context, accountID *uint, category *string) (*CourseListPage, error)
	Get(ctx context.Context, accountID *uint, courseID uint) (*CourseDetailPage, error)
	Create(ctx context.Context, accountID uint, req validator.CourseCreateRequest) (*models.Course, error)
	ToggleSave(ctx context.Context, accountID, courseID uint) (bool, error)
	Enroll(ctx context.Context, accountID, courseID uint) error
	Certificate(ctx context.Context, accountID, courseID uint) (*CertificateData, error)
}

type TeacherService interface {
	RefreshStats(ctx context.Context, teacherID uint) (repositories.TeacherStats, error)
	Courses(ctx context.Context, accountID uint) ([]*models.Course, error)
	Roster(ctx context.Context, accountID uint) ([]RosterEntry, error)
}

type JobService interface {
	List(ctx context.Context, filters repositories.JobFilters) ([]*models.Job, int64, error)
	Create(ctx context.Context, accountID uint, req validator.JobCreateRequest) (*models.Job, error)
}

type ContentService interface {
	Home(ctx context.Context) (*HomePage, error)
	About(ctx context.Context) (*AboutPage, error)
	Instructors(ctx context.Context) ([]*models.Instructor, error)
	Team(ctx context.Context) ([]*models.TeamMember, error)
	Testimonials(ctx context.Context) ([]*models.Testimonial, error)
	SubmitContact(ctx context.Context, req validator.ContactRequest) (*models.Contact, error)
}

// ExportService renders downloadable reports.
type ExportService interface {
	TeacherRoster(ctx context.Context, accountID uint) ([]byte, string, error)
}
