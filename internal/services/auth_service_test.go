package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashlop/sillora/internal/auth"
	"github.com/stashlop/sillora/internal/config"
	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/validator"
)

func newAuthService(repo *mockRepository) AuthService {
	v := validator.New()
	jwter := auth.NewJWTer(config.JWTConfig{Secret: "test-secret-key", Issuer: "sillora", TTL: time.Hour})
	profiles := NewProfileService(repo, nil, v, testLogger())
	return NewAuthService(repo, nil, v, jwter, profiles, nil, testLogger())
}

func TestSignupTeacherCreatesOnlyTeacherRecord(t *testing.T) {
	repo := newMockRepository()
	svc := newAuthService(repo)

	result, err := svc.Signup(context.Background(), validator.SignupRequest{
		Username:  "rivka",
		Email:     "rivka@example.com",
		Password:  "correct-horse",
		Role:      models.RoleTeacher,
		FirstName: "Rivka",
		LastName:  "Stein",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, result.Role)
	assert.Equal(t, "/teacher/", result.Destination)
	assert.NotEmpty(t, result.Token)

	assert.Equal(t, 1, repo.profileCreates)
	assert.Equal(t, 1, repo.teacherCreates)
	assert.Equal(t, 0, repo.studentCreates)

	profile := repo.profiles[result.Account.ID]
	require.NotNil(t, profile)
	assert.Equal(t, models.RoleTeacher, profile.Role)
	require.NotNil(t, repo.teachers[result.Account.ID])
	assert.Nil(t, repo.students[result.Account.ID])
}

func TestSignupDuplicateUsername(t *testing.T) {
	repo := newMockRepository()
	repo.addAccount("dana")
	svc := newAuthService(repo)

	_, err := svc.Signup(context.Background(), validator.SignupRequest{
		Username: "dana",
		Email:    "someone-else@example.com",
		Password: "correct-horse",
		Role:     models.RoleStudent,
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 0, repo.profileCreates)
}

func TestSignupRejectsInvalidRole(t *testing.T) {
	repo := newMockRepository()
	svc := newAuthService(repo)

	_, err := svc.Signup(context.Background(), validator.SignupRequest{
		Username: "dana",
		Email:    "dana@example.com",
		Password: "correct-horse",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestLoginHealsMissingRoleRecord(t *testing.T) {
	repo := newMockRepository()
	account := repo.addAccount("rivka")
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	account.PasswordHash = hash
	repo.addProfile(account.ID, models.RoleTeacher)
	svc := newAuthService(repo)

	result, err := svc.Login(context.Background(), validator.LoginRequest{
		Username: "rivka",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, result.Role)
	assert.Equal(t, "/teacher/", result.Destination)
	require.NotNil(t, repo.teachers[account.ID])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockRepository()
	account := repo.addAccount("rivka")
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	account.PasswordHash = hash
	svc := newAuthService(repo)

	_, err = svc.Login(context.Background(), validator.LoginRequest{
		Username: "rivka",
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
