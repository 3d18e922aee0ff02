package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/cache"
	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
)

// ===== STUDENT =====

type StudentPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewStudentPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.StudentRepository {
	return &StudentPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (s *StudentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, student *models.Student) error {
	if err := tx.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student record: %w", err)
	}
	return nil
}

func (s *StudentPostgreSQL) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Student, error) {
	var student models.Student
	if err := tx.WithContext(ctx).Where("account_id = ?", accountID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *StudentPostgreSQL) GetEnrolledCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error) {
	var courses []*models.Course
	err := tx.WithContext(ctx).
		Model(&models.Student{ID: studentID}).
		Association("EnrolledCourses").
		Find(&courses)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrolled courses: %w", err)
	}
	return courses, nil
}

func (s *StudentPostgreSQL) GetSavedCourses(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Course, error) {
	var courses []*models.Course
	err := tx.WithContext(ctx).
		Model(&models.Student{ID: studentID}).
		Association("SavedCourses").
		Find(&courses)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved courses: %w", err)
	}
	return courses, nil
}

func (s *StudentPostgreSQL) IsCourseSaved(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Table("student_saved_courses").
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check saved course: %w", err)
	}
	return count > 0, nil
}

func (s *StudentPostgreSQL) SaveCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error {
	err := tx.WithContext(ctx).
		Model(&models.Student{ID: studentID}).
		Association("SavedCourses").
		Append(&models.Course{ID: courseID})
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}

func (s *StudentPostgreSQL) UnsaveCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error {
	err := tx.WithContext(ctx).
		Model(&models.Student{ID: studentID}).
		Association("SavedCourses").
		Delete(&models.Course{ID: courseID})
	if err != nil {
		return fmt.Errorf("failed to unsave course: %w", err)
	}
	return nil
}

// Enroll links the student to the course and invalidates the cached
// per-teacher enrollment counts.
func (s *StudentPostgreSQL) Enroll(ctx context.Context, tx *gorm.DB, studentID, courseID uint) error {
	err := tx.WithContext(ctx).
		Model(&models.Student{ID: studentID}).
		Association("EnrolledCourses").
		Append(&models.Course{ID: courseID})
	if err != nil {
		return fmt.Errorf("failed to enroll: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, s.cacheManager.Stats, "enrollments:*")
	return nil
}

func (s *StudentPostgreSQL) GetByEnrolledCourses(ctx context.Context, tx *gorm.DB, courseIDs []uint) ([]*models.Student, error) {
	if len(courseIDs) == 0 {
		return []*models.Student{}, nil
	}
	var students []*models.Student
	err := tx.WithContext(ctx).
		Distinct("students.*").
		Joins("JOIN student_enrollments ON student_enrollments.student_id = students.id").
		Where("student_enrollments.course_id IN ?", courseIDs).
		Find(&students).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get students by courses: %w", err)
	}
	return students, nil
}

// ===== TEACHER =====

type TeacherPostgreSQL struct {
	db *gorm.DB
}

func NewTeacherPostgreSQL(db *gorm.DB) repositories.TeacherRepository {
	return &TeacherPostgreSQL{db: db}
}

func (t *TeacherPostgreSQL) Create(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	if err := tx.WithContext(ctx).Create(teacher).Error; err != nil {
		return fmt.Errorf("failed to create teacher record: %w", err)
	}
	return nil
}

func (t *TeacherPostgreSQL) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := tx.WithContext(ctx).Where("account_id = ?", accountID).First(&teacher).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (t *TeacherPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := tx.WithContext(ctx).First(&teacher, id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (t *TeacherPostgreSQL) Update(ctx context.Context, tx *gorm.DB, teacher *models.Teacher) error {
	if err := tx.WithContext(ctx).Save(teacher).Error; err != nil {
		return fmt.Errorf("failed to update teacher record: %w", err)
	}
	return nil
}

func (t *TeacherPostgreSQL) UpdateStats(ctx context.Context, tx *gorm.DB, teacherID uint, stats repositories.TeacherStats) error {
	err := tx.WithContext(ctx).
		Model(&models.Teacher{}).
		Where("id = ?", teacherID).
		Updates(map[string]interface{}{
			"total_courses":        stats.TotalCourses,
			"total_students":       stats.TotalStudents,
			"student_progress_avg": stats.StudentProgressAvg,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update teacher stats: %w", err)
	}
	return nil
}

// ===== COMPANY =====

type CompanyPostgreSQL struct {
	db *gorm.DB
}

func NewCompanyPostgreSQL(db *gorm.DB) repositories.CompanyRepository {
	return &CompanyPostgreSQL{db: db}
}

func (c *CompanyPostgreSQL) Create(ctx context.Context, tx *gorm.DB, company *models.Company) error {
	if err := tx.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company record: %w", err)
	}
	return nil
}

func (c *CompanyPostgreSQL) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Company, error) {
	var company models.Company
	if err := tx.WithContext(ctx).Where("account_id = ?", accountID).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *CompanyPostgreSQL) Update(ctx context.Context, tx *gorm.DB, company *models.Company) error {
	if err := tx.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("failed to update company record: %w", err)
	}
	return nil
}

func (c *CompanyPostgreSQL) AddPostedJob(ctx context.Context, tx *gorm.DB, companyID, jobID uint) error {
	err := tx.WithContext(ctx).
		Model(&models.Company{ID: companyID}).
		Association("JobsPosted").
		Append(&models.Job{ID: jobID})
	if err != nil {
		return fmt.Errorf("failed to link posted job: %w", err)
	}
	return nil
}

func (c *CompanyPostgreSQL) GetPostedJobs(ctx context.Context, tx *gorm.DB, companyID uint) ([]*models.Job, error) {
	var jobs []*models.Job
	err := tx.WithContext(ctx).
		Model(&models.Company{ID: companyID}).
		Association("JobsPosted").
		Find(&jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to get posted jobs: %w", err)
	}
	return jobs, nil
}
