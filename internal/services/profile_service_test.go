package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/validator"
)

func newProfileService(repo *mockRepository) ProfileService {
	return NewProfileService(repo, nil, validator.New(), testLogger())
}

func TestResolveCreatesMissingProfile(t *testing.T) {
	repo := newMockRepository()
	account := repo.addAccount("dana")
	svc := newProfileService(repo)

	role, err := svc.Resolve(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)

	profile := repo.profiles[account.ID]
	require.NotNil(t, profile)
	assert.Equal(t, models.RoleStudent, profile.Role)

	student := repo.students[account.ID]
	require.NotNil(t, student)
	assert.NotNil(t, student.Progress)
}

func TestResolveIsIdempotent(t *testing.T) {
	repo := newMockRepository()
	account := repo.addAccount("dana")
	svc := newProfileService(repo)

	first, err := svc.Resolve(context.Background(), account.ID)
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), account.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.profileCreates)
	assert.Equal(t, 1, repo.studentCreates)
}

func TestResolveCreatesMissingTeacherRecord(t *testing.T) {
	repo := newMockRepository()
	account := repo.addAccount("rivka")
	account.FirstName = "Rivka"
	account.LastName = "Stein"
	repo.addProfile(account.ID, models.RoleTeacher)
	svc := newProfileService(repo)

	role, err := svc.Resolve(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, role)

	teacher := repo.teachers[account.ID]
	require.NotNil(t, teacher)
	assert.Equal(t, "Web Development", teacher.Specialization)
	assert.Equal(t, "Experienced instructor Rivka Stein", teacher.Bio)

	// The teacher role never gains a student record.
	assert.Equal(t, 0, repo.studentCreates)
	assert.Nil(t, repo.students[account.ID])
}

func TestResolveUnknownAccount(t *testing.T) {
	repo := newMockRepository()
	svc := newProfileService(repo)

	_, err := svc.Resolve(context.Background(), 42)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "/login/", notFound.Fallback)
}
