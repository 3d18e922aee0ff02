package services

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
)

const recommendedCourseLimit = 6

type dashboardService struct {
	repo     repositories.Repository
	db       *gorm.DB
	profiles ProfileService
	teachers TeacherService
	logger   utils.Logger
}

func NewDashboardService(repo repositories.Repository, db *gorm.DB, profiles ProfileService, teachers TeacherService, logger utils.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		db:       db,
		profiles: profiles,
		teachers: teachers,
		logger:   logger,
	}
}

// Route resolves the account's role and returns the dashboard path for it.
// Resolution heals missing profile or role-record state first, so the
// destination always has a working dashboard behind it.
func (s *dashboardService) Route(ctx context.Context, accountID uint) (string, error) {
	role, err := s.profiles.Resolve(ctx, accountID)
	if err != nil {
		return "", err
	}
	return destinationForRole(role), nil
}

func (s *dashboardService) StudentHome(ctx context.Context, accountID uint) (*StudentHomeData, error) {
	if err := s.requireRole(ctx, accountID, models.RoleStudent); err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByID(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	student, err := s.repo.Student().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load student: %w", err)
	}

	enrolled, err := s.repo.Student().GetEnrolledCourses(ctx, s.db, student.ID)
	if err != nil {
		return nil, err
	}
	saved, err := s.repo.Student().GetSavedCourses(ctx, s.db, student.ID)
	if err != nil {
		return nil, err
	}

	// Only course IDs that still exist count toward the aggregate; the
	// progress map can reference deleted courses.
	existing, err := s.repo.Course().ExistingIDs(ctx, s.db, progressCourseIDs(student.Progress))
	if err != nil {
		return nil, err
	}
	summary := AggregateProgress(student.Progress, existing)

	recommended, err := s.recommendCourses(ctx, enrolled)
	if err != nil {
		return nil, err
	}

	return &StudentHomeData{
		Account:            account,
		EnrolledCourses:    enrolled,
		SavedCourses:       saved,
		Progress:           summary,
		RecommendedCourses: recommended,
	}, nil
}

func (s *dashboardService) TeacherHome(ctx context.Context, accountID uint) (*TeacherHomeData, error) {
	if err := s.requireRole(ctx, accountID, models.RoleTeacher); err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByID(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	teacher, err := s.repo.Teacher().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load teacher: %w", err)
	}

	// Stats are recomputed on every dashboard view.
	stats, err := s.teachers.RefreshStats(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	teacher.TotalCourses = stats.TotalCourses
	teacher.TotalStudents = stats.TotalStudents
	teacher.StudentProgressAvg = stats.StudentProgressAvg

	courses, err := s.repo.Course().ListByInstructor(ctx, s.db, teacher.ID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.repo.Course().EnrollmentCounts(ctx, s.db, teacher.ID)
	if err != nil {
		return nil, err
	}

	return &TeacherHomeData{
		Account:     account,
		Teacher:     teacher,
		Courses:     courses,
		Stats:       stats,
		Enrollments: enrollments,
	}, nil
}

func (s *dashboardService) CompanyHome(ctx context.Context, accountID uint) (*CompanyHomeData, error) {
	if err := s.requireRole(ctx, accountID, models.RoleCompany); err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByID(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	company, err := s.repo.Company().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	jobs, err := s.repo.Company().GetPostedJobs(ctx, s.db, company.ID)
	if err != nil {
		return nil, err
	}

	return &CompanyHomeData{Account: account, Company: company, Jobs: jobs}, nil
}

func (s *dashboardService) requireRole(ctx context.Context, accountID uint, want models.UserRole) error {
	role, err := s.profiles.Resolve(ctx, accountID)
	if err != nil {
		return err
	}
	if role != want {
		return fmt.Errorf("%w: %s dashboard requires the %s role", ErrForbidden, want, want)
	}
	return nil
}

// recommendCourses suggests courses from the category of the most recent
// enrollment, excluding already-enrolled ones; with no enrollments it falls
// back to the newest courses.
func (s *dashboardService) recommendCourses(ctx context.Context, enrolled []*models.Course) ([]*models.Course, error) {
	enrolledSet := make(map[uint]struct{}, len(enrolled))
	for _, course := range enrolled {
		enrolledSet[course.ID] = struct{}{}
	}

	var candidates []*models.Course
	if len(enrolled) > 0 {
		latest := enrolled[len(enrolled)-1]
		related, err := s.repo.Course().RelatedByCategory(ctx, s.db, latest.Category, latest.ID, recommendedCourseLimit*2)
		if err != nil {
			return nil, err
		}
		candidates = related
	} else {
		courses, _, err := s.repo.Course().List(ctx, s.db, repositories.CourseFilters{
			Limit:     recommendedCourseLimit,
			SortBy:    "created_at",
			SortOrder: "desc",
		})
		if err != nil {
			return nil, err
		}
		candidates = courses
	}

	recommended := make([]*models.Course, 0, recommendedCourseLimit)
	for _, course := range candidates {
		if _, ok := enrolledSet[course.ID]; ok {
			continue
		}
		recommended = append(recommended, course)
		if len(recommended) == recommendedCourseLimit {
			break
		}
	}
	return recommended, nil
}

// progressCourseIDs extracts the course IDs a progress map references,
// skipping keys that do not parse.
func progressCourseIDs(progress map[string]interface{}) []uint {
	ids := make([]uint, 0, len(progress))
	for key := range progress {
		if id, err := strconv.ParseUint(key, 10, 64); err == nil {
			ids = append(ids, uint(id))
		}
	}
	return ids
}
