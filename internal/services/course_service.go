package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/events"
	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
	"github.com/stashlop/sillora/internal/validator"
)

const relatedCourseLimit = 4

type courseService struct {
	repo      repositories.Repository
	db        *gorm.DB
	validator *validator.Validator
	profiles  ProfileService
	publisher *events.Publisher
	logger    utils.Logger
}

func NewCourseService(repo repositories.Repository, db *gorm.DB, v *validator.Validator, profiles ProfileService, publisher *events.Publisher, logger utils.Logger) CourseService {
	return &courseService{
		repo:      repo,
		db:        db,
		validator: v,
		profiles:  profiles,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns the catalog, optionally filtered by category. When the caller
// is a signed-in student their saved-course IDs are included so the listing
// can mark them.
func (s *courseService) List(ctx context.Context, accountID *uint, category *string) (*CourseListPage, error) {
	filters := repositories.CourseFilters{
		Category:  category,
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	courses, total, err := s.repo.Course().List(ctx, s.db, filters)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.Course().Categories(ctx, s.db)
	if err != nil {
		return nil, err
	}

	page := &CourseListPage{Courses: courses, Total: total, Categories: categories}

	if accountID != nil {
		student, err := s.repo.Student().GetByAccount(ctx, s.db, *accountID)
		if err == nil {
			saved, err := s.repo.Student().GetSavedCourses(ctx, s.db, student.ID)
			if err != nil {
				return nil, err
			}
			page.SavedCourseIDs = make(map[uint]bool, len(saved))
			for _, course := range saved {
				page.SavedCourseIDs[course.ID] = true
			}
		} else if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load student: %w", err)
		}
	}

	return page, nil
}

// Get returns the course detail page. A missing course resolves to the
// catalog listing rather than a bare 404.
func (s *courseService) Get(ctx context.Context, accountID *uint, courseID uint) (*CourseDetailPage, error) {
	course, err := s.repo.Course().GetByID(ctx, s.db, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, &NotFoundError{Resource: "course", Fallback: "/courses/"}
		}
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	related, err := s.repo.Course().RelatedByCategory(ctx, s.db, course.Category, course.ID, relatedCourseLimit)
	if err != nil {
		return nil, err
	}

	page := &CourseDetailPage{Course: course, RelatedCourses: related}

	if accountID != nil {
		student, err := s.repo.Student().GetByAccount(ctx, s.db, *accountID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return page, nil
			}
			return nil, fmt.Errorf("failed to load student: %w", err)
		}

		page.IsSaved, err = s.repo.Student().IsCourseSaved(ctx, s.db, student.ID, courseID)
		if err != nil {
			return nil, err
		}

		enrolled, err := s.repo.Student().GetEnrolledCourses(ctx, s.db, student.ID)
		if err != nil {
			return nil, err
		}
		for _, c := range enrolled {
			if c.ID == courseID {
				page.IsEnrolled = true
				break
			}
		}

		if page.IsEnrolled {
			if percent, ok := toPercent(student.Progress[strconv.FormatUint(uint64(courseID), 10)]); ok {
				page.ProgressPercent = &percent
			}
		}
	}

	return page, nil
}

// Create adds a course owned by the calling teacher.
func (s *courseService) Create(ctx context.Context, accountID uint, req validator.CourseCreateRequest) (*models.Course, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	role, err := s.profiles.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleTeacher {
		return nil, fmt.Errorf("%w: only teachers can create courses", ErrForbidden)
	}

	teacher, err := s.repo.Teacher().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teacher: %w", err)
	}

	course := &models.Course{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Duration:     req.Duration,
		Level:        req.Level,
		InstructorID: &teacher.ID,
	}
	if err := s.repo.Course().Create(ctx, s.db, course); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.TopicCourseCreated, events.CourseCreated{
		CourseID:     course.ID,
		Title:        course.Title,
		Category:     course.Category,
		InstructorID: teacher.ID,
		CreatedAt:    time.Now(),
	})

	utils.FromContext(ctx, s.logger).Info("course created",
		"course_id", course.ID, "teacher_id", teacher.ID, "title", course.Title)
	return course, nil
}

// ToggleSave flips the saved state of a course for the student and reports
// the new state.
func (s *courseService) ToggleSave(ctx context.Context, accountID, courseID uint) (bool, error) {
	student, err := s.studentByAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	if _, err := s.repo.Course().GetByID(ctx, s.db, courseID); err != nil {
		if repositories.IsNotFoundError(err) {
			return false, &NotFoundError{Resource: "course", Fallback: "/courses/"}
		}
		return false, fmt.Errorf("failed to load course: %w", err)
	}

	saved, err := s.repo.Student().IsCourseSaved(ctx, s.db, student.ID, courseID)
	if err != nil {
		return false, err
	}

	if saved {
		if err := s.repo.Student().UnsaveCourse(ctx, s.db, student.ID, courseID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.repo.Student().SaveCourse(ctx, s.db, student.ID, courseID); err != nil {
		return false, err
	}
	return true, nil
}

// Enroll adds the student to the course. Enrolling twice is a no-op.
func (s *courseService) Enroll(ctx context.Context, accountID, courseID uint) error {
	student, err := s.studentByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if _, err := s.repo.Course().GetByID(ctx, s.db, courseID); err != nil {
		if repositories.IsNotFoundError(err) {
			return &NotFoundError{Resource: "course", Fallback: "/courses/"}
		}
		return fmt.Errorf("failed to load course: %w", err)
	}

	enrolled, err := s.repo.Student().GetEnrolledCourses(ctx, s.db, student.ID)
	if err != nil {
		return err
	}
	for _, c := range enrolled {
		if c.ID == courseID {
			return nil
		}
	}

	if err := s.repo.Student().Enroll(ctx, s.db, student.ID, courseID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.TopicCourseEnrolled, events.CourseEnrolled{
		StudentID:  student.ID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	})
	return nil
}

// Certificate returns the certificate payload for a completed course.
// Incomplete courses are forbidden, not hidden.
func (s *courseService) Certificate(ctx context.Context, accountID, courseID uint) (*CertificateData, error) {
	student, err := s.studentByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	course, err := s.repo.Course().GetByID(ctx, s.db, courseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, &NotFoundError{Resource: "course", Fallback: "/courses/"}
		}
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	percent, ok := toPercent(student.Progress[strconv.FormatUint(uint64(courseID), 10)])
	if !ok || percent < 100 {
		return nil, fmt.Errorf("%w: course not completed", ErrForbidden)
	}

	account, err := s.repo.Account().GetByID(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	return &CertificateData{
		StudentName: displayName(account),
		CourseTitle: course.Title,
		Percent:     percent,
		IssuedAt:    time.Now(),
	}, nil
}

func (s *courseService) studentByAccount(ctx context.Context, accountID uint) (*models.Student, error) {
	role, err := s.profiles.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleStudent {
		return nil, fmt.Errorf("%w: student account required", ErrForbidden)
	}
	student, err := s.repo.Student().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}
	return student, nil
}
