package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
)

type teacherService struct {
	repo   repositories.Repository
	db     *gorm.DB
	logger utils.Logger
}

func NewTeacherService(repo repositories.Repository, db *gorm.DB, logger utils.Logger) TeacherService {
	return &teacherService{repo: repo, db: db, logger: logger}
}

// RefreshStats recomputes the teacher's derived counters from enrollments
// and student progress, persists them and returns the fresh values. The
// stored columns are a cache of this computation, never authoritative.
func (s *teacherService) RefreshStats(ctx context.Context, teacherID uint) (repositories.TeacherStats, error) {
	var stats repositories.TeacherStats

	if _, err := s.repo.Teacher().GetByID(ctx, s.db, teacherID); err != nil {
		if repositories.IsNotFoundError(err) {
			return stats, &NotFoundError{Resource: "teacher", Fallback: "/"}
		}
		return stats, fmt.Errorf("failed to load teacher: %w", err)
	}

	courses, err := s.repo.Course().ListByInstructor(ctx, s.db, teacherID)
	if err != nil {
		return stats, err
	}
	stats.TotalCourses = len(courses)

	courseIDs := make([]uint, 0, len(courses))
	courseSet := make(map[uint]struct{}, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
		courseSet[course.ID] = struct{}{}
	}

	students, err := s.repo.Student().GetByEnrolledCourses(ctx, s.db, courseIDs)
	if err != nil {
		return stats, err
	}
	stats.TotalStudents = len(students)

	// Average over every progress entry students hold for this teacher's
	// courses; malformed entries are skipped the same way the student
	// aggregate skips them.
	var sum float64
	var count int
	for _, student := range students {
		for key, raw := range student.Progress {
			id, err := strconv.ParseUint(key, 10, 64)
			if err != nil {
				continue
			}
			if _, ok := courseSet[uint(id)]; !ok {
				continue
			}
			if percent, ok := toPercent(raw); ok {
				sum += percent
				count++
			}
		}
	}
	if count > 0 {
		stats.StudentProgressAvg = math.Round(sum/float64(count)*100) / 100
	}

	if err := s.repo.Teacher().UpdateStats(ctx, s.db, teacherID, stats); err != nil {
		return stats, err
	}

	utils.FromContext(ctx, s.logger).Debug("teacher stats refreshed",
		"teacher_id", teacherID,
		"total_courses", stats.TotalCourses,
		"total_students", stats.TotalStudents,
		"student_progress_avg", stats.StudentProgressAvg,
	)
	return stats, nil
}

func (s *teacherService) Courses(ctx context.Context, accountID uint) ([]*models.Course, error) {
	teacher, err := s.teacherByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.Course().ListByInstructor(ctx, s.db, teacher.ID)
}

// Roster lists every student enrolled in at least one of the teacher's
// courses, with their enrollment overlap and average progress on those
// courses.
func (s *teacherService) Roster(ctx context.Context, accountID uint) ([]RosterEntry, error) {
	teacher, err := s.teacherByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	courses, err := s.repo.Course().ListByInstructor(ctx, s.db, teacher.ID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]uint, 0, len(courses))
	courseSet := make(map[uint]struct{}, len(courses))
	for _, course := range courses {
		courseIDs = append(courseIDs, course.ID)
		courseSet[course.ID] = struct{}{}
	}

	students, err := s.repo.Student().GetByEnrolledCourses(ctx, s.db, courseIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]RosterEntry, 0, len(students))
	for _, student := range students {
		account, err := s.repo.Account().GetByID(ctx, s.db, student.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to load student account: %w", err)
		}

		enrolled, err := s.repo.Student().GetEnrolledCourses(ctx, s.db, student.ID)
		if err != nil {
			return nil, err
		}
		courseCount := 0
		for _, course := range enrolled {
			if _, ok := courseSet[course.ID]; ok {
				courseCount++
			}
		}

		summary := AggregateProgress(student.Progress, courseSet)
		entries = append(entries, RosterEntry{
			StudentID:      student.ID,
			Name:           displayName(account),
			Email:          account.Email,
			EnrollmentDate: student.EnrollmentDate,
			CourseCount:    courseCount,
			AvgProgress:    summary.Average,
		})
	}
	return entries, nil
}

func (s *teacherService) teacherByAccount(ctx context.Context, accountID uint) (*models.Teacher, error) {
	teacher, err := s.repo.Teacher().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, &NotFoundError{Resource: "teacher", Fallback: "/"}
		}
		return nil, fmt.Errorf("failed to load teacher: %w", err)
	}
	return teacher, nil
}
