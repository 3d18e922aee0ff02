package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
)

// Repository methods take the *gorm.DB to run against so callers can thread
// a transaction through WithTransaction.

type AccountRepository interface {
	Create(ctx context.Context, tx *gorm.DB, account *models.Account) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Account, error)
	GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*models.Account, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.Account, error)
	UpdateEmail(ctx context.Context, tx *gorm.DB, id uint, email string) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type ProfileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, profile *models.Profile) error
	GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Profile, error)
	Update(ctx context.Context, tx *gorm.DB, profile *models.Profile) error
	UpdatePicture(ctx context.Context, tx *gorm.DB, accountID uint, path string) error
}

type StudentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, student *models.Student) error
	GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Student, error)
	GetEnrolledCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error)
	GetSavedCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error)
	IsCourseSaved(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error)
	SaveCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error
	UnsaveCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error
	Enroll(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error
	GetByEnrolledCourses(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*models.Student, error)
}

type TeacherRepository interface {
	Create(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error
	GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Teacher, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Teacher, error)
	Update(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error
	UpdateStats(ctx context.Context, tx *gorm.DB, teacherID uint, stats TeacherStats) error
}

type CompanyRepository interface {
	Create(ctx context.Context, tx *gorm.DB, company *models.Company) error
	GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Company, error)
	Update(ctx context.Context, tx *gorm.DB, company *models.Company) error
	GetPostedJobs(ctx context.Context, tx *gorm.DB, companyID uint) ([]*models.Job, error)
	AddPostedJob(ctx context.Context, tx *gorm.DB, companyID, jobID uint) error
}

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *models.Course) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error)
	List(ctx context.Context, tx *gorm.DB, filters CourseFilters) ([]*models.Course, int64, error)
	ListByInstructor(ctx context.Context, tx *gorm.DB, teacherID uint) ([]*models.Course, error)
	ListByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*models.Course, error)
	ExistingIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]struct{}, error)
	Categories(ctx context.Context, tx *gorm.DB) ([]string, error)
	RelatedByCategory(ctx context.Context, tx *gorm.DB, category string, excludeID uint, limit int) ([]*models.Course, error)
	EnrollmentCounts(ctx context.Context, tx *gorm.DB, teacherID uint) ([]CourseEnrollment, error)
}

type JobRepository interface {
	Create(ctx context.Context, tx *gorm.DB, job *models.Job) error
	List(ctx context.Context, tx *gorm.DB, filters JobFilters) ([]*models.Job, int64, error)
}

// ContentRepository covers the independent content records: public
// instructors, testimonials, team members and contact submissions.
type ContentRepository interface {
	ListInstructors(ctx context.Context, tx *gorm.DB) ([]*models.Instructor, error)
	ListTestimonials(ctx context.Context, tx *gorm.DB, limit int) ([]*models.Testimonial, error)
	ListTeamMembers(ctx context.Context, tx *gorm.DB) ([]*models.TeamMember, error)
	CreateContact(ctx context.Context, tx *gorm.DB, contact *models.Contact) error
}

// ===== MAIN REPOSITORY INTERFACE =====

type Repository interface {
	Account() AccountRepository
	Profile() ProfileRepository
	Student() StudentRepository
	Teacher() TeacherRepository
	Company() CompanyRepository
	Course() CourseRepository
	Job() JobRepository
	Content() ContentRepository

	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager handles repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// IsNotFoundError reports whether err is a record-not-found condition.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
