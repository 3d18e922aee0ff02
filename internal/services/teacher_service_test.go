package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/stashlop/sillora/internal/repositories"
)

func progressKey(courseID uint) string {
	return strconv.FormatUint(uint64(courseID), 10)
}

func TestRefreshStatsZeroCourses(t *testing.T) {
	repo := newMockRepository()
	account := repo.addAccount("rivka")
	teacher := repo.addTeacher(account.ID)
	svc := NewTeacherService(repo, nil, testLogger())

	stats, err := svc.RefreshStats(context.Background(), teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, repositories.TeacherStats{}, stats)

	require.Len(t, repo.statUpdates, 1)
	assert.Equal(t, repositories.TeacherStats{}, repo.statUpdates[0])
	assert.Equal(t, 0, teacher.TotalCourses)
	assert.Equal(t, 0, teacher.TotalStudents)
	assert.Zero(t, teacher.StudentProgressAvg)
}

func TestRefreshStatsAveragesOwnCoursesOnly(t *testing.T) {
	repo := newMockRepository()
	account := repo.addAccount("rivka")
	teacher := repo.addTeacher(account.ID)
	courseA := repo.addCourse("Go Basics", teacher.ID)
	courseB := repo.addCourse("SQL Foundations", teacher.ID)
	otherCourse := repo.addCourse("Painting", teacher.ID+100)

	studentAccount := repo.addAccount("dana")
	student := repo.addStudent(studentAccount.ID)
	student.Progress = datatypes.JSONMap{
		progressKey(courseA.ID):     float64(50),
		progressKey(courseB.ID):     float64(100),
		progressKey(otherCourse.ID): float64(10),
		"garbage":                   "not a number",
	}
	repo.enroll(student.ID, courseA.ID)
	repo.enroll(student.ID, courseB.ID)

	svc := NewTeacherService(repo, nil, testLogger())
	stats, err := svc.RefreshStats(context.Background(), teacher.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 75.0, stats.StudentProgressAvg)
	assert.Equal(t, 75.0, teacher.StudentProgressAvg)
}

func TestRefreshStatsUnknownTeacher(t *testing.T) {
	repo := newMockRepository()
	svc := NewTeacherService(repo, nil, testLogger())

	_, err := svc.RefreshStats(context.Background(), 99)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "/", notFound.Fallback)
}
