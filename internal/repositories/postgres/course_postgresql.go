package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/cache"
	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
)

type CoursePostgreSQL struct {
	db           *gorm.DB
	helpers      *SharedHelpers
	cacheManager *cache.CacheManager
}

func NewCoursePostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.CourseRepository {
	return &CoursePostgreSQL{
		db:           db,
		helpers:      NewSharedHelpers(db),
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// Create persists a new course and invalidates the cached listings and the
// per-teacher enrollment counts, which gain a zero row for the new course.
func (c *CoursePostgreSQL) Create(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	if err := tx.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, c.cacheManager.Course, "list:*")
	cache.SafeInvalidatePattern(ctx, c.cacheManager.Course, "categories")
	cache.SafeInvalidatePattern(ctx, c.cacheManager.Stats, "enrollments:*")
	return nil
}

func (c *CoursePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	err := tx.WithContext(ctx).
		Preload("Instructor").
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// cachedCourseList is the cache payload for a filtered listing.
type cachedCourseList struct {
	Courses []*models.Course `json:"courses"`
	Total   int64            `json:"total"`
}

// courseListCacheKey derives a stable cache key from the listing filters.
func courseListCacheKey(filters repositories.CourseFilters) string {
	category, instructor, level := "", "", ""
	if filters.Category != nil {
		category = *filters.Category
	}
	if filters.InstructorID != nil {
		instructor = strconv.FormatUint(uint64(*filters.InstructorID), 10)
	}
	if filters.Level != nil {
		level = *filters.Level
	}
	return fmt.Sprintf("list:%s:%s:%s:%s:%s:%d:%d",
		category, instructor, level, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)
}

// List returns a filtered page of courses, cached per filter combination.
// Course writes invalidate the whole list prefix.
func (c *CoursePostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.CourseFilters) ([]*models.Course, int64, error) {
	var cached cachedCourseList
	err := c.cacheManager.Course.CacheOrExecute(ctx, courseListCacheKey(filters), &cached, cache.CourseCacheConfig.TTL, func() (interface{}, error) {
		query := c.helpers.ApplyCourseFilters(tx.WithContext(ctx).Model(&models.Course{}), filters)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			return nil, fmt.Errorf("failed to count courses: %w", err)
		}

		var courses []*models.Course
		query = c.helpers.ApplyPaginationAndSort(query, filters.SortBy, filters.SortOrder, filters.Limit, filters.Offset)
		if err := query.Preload("Instructor").Find(&courses).Error; err != nil {
			return nil, fmt.Errorf("failed to list courses: %w", err)
		}

		return cachedCourseList{Courses: courses, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return cached.Courses, cached.Total, nil
}

func (c *CoursePostgreSQL) ListByInstructor(ctx context.Context, tx *gorm.DB, teacherID uint) ([]*models.Course, error) {
	var courses []*models.Course
	err := tx.WithContext(ctx).
		Where("instructor_id = ?", teacherID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list instructor courses: %w", err)
	}
	return courses, nil
}

func (c *CoursePostgreSQL) ListByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]*models.Course, error) {
	if len(ids) == 0 {
		return []*models.Course{}, nil
	}
	var courses []*models.Course
	if err := tx.WithContext(ctx).Where("id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses by ids: %w", err)
	}
	return courses, nil
}

func (c *CoursePostgreSQL) ExistingIDs(ctx context.Context, tx *gorm.DB, ids []uint) (map[uint]struct{}, error) {
	existing := make(map[uint]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []uint
	err := tx.WithContext(ctx).
		Model(&models.Course{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve course ids: %w", err)
	}

	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}

// Categories returns the distinct course categories, cached.
func (c *CoursePostgreSQL) Categories(ctx context.Context, tx *gorm.DB) ([]string, error) {
	var categories []string
	err := c.cacheManager.Course.CacheOrExecute(ctx, "categories", &categories, cache.CourseCacheConfig.TTL, func() (interface{}, error) {
		var dbCategories []string
		err := tx.WithContext(ctx).
			Model(&models.Course{}).
			Distinct("category").
			Order("category ASC").
			Pluck("category", &dbCategories).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get categories: %w", err)
		}
		return dbCategories, nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CoursePostgreSQL) RelatedByCategory(ctx context.Context, tx *gorm.DB, category string, excludeID uint, limit int) ([]*models.Course, error) {
	var courses []*models.Course
	err := tx.WithContext(ctx).
		Where("category = ? AND id <> ?", category, excludeID).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get related courses: %w", err)
	}
	return courses, nil
}

// EnrollmentCounts returns, for each of the teacher's courses, the number of
// enrolled students. Courses with no enrollment rows report zero via the
// left join. The counts are cached per teacher; enrollments and course
// creation invalidate them.
func (c *CoursePostgreSQL) EnrollmentCounts(ctx context.Context, tx *gorm.DB, teacherID uint) ([]repositories.CourseEnrollment, error) {
	var counts []repositories.CourseEnrollment
	key := fmt.Sprintf("enrollments:%d", teacherID)
	err := c.cacheManager.Stats.CacheOrExecute(ctx, key, &counts, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		var dbCounts []repositories.CourseEnrollment
		err := tx.WithContext(ctx).
			Model(&models.Course{}).
			Select("courses.id as course_id, COUNT(student_enrollments.student_id) as enrolled_count").
			Joins("LEFT JOIN student_enrollments ON student_enrollments.course_id = courses.id").
			Where("courses.instructor_id = ?", teacherID).
			Group("courses.id").
			Scan(&dbCounts).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get enrollment counts: %w", err)
		}
		return dbCounts, nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
