package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stashlop/sillora/internal/models"
)

func TestNotFoundErrorUnwrapsToNotFound(t *testing.T) {
	err := &NotFoundError{Resource: "course", Fallback: "/courses/"}

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "course not found", err.Error())

	var notFound *NotFoundError
	assert.True(t, errors.As(error(err), &notFound))
	assert.Equal(t, "/courses/", notFound.Fallback)
}

func TestDestinationForRole(t *testing.T) {
	tests := []struct {
		role models.UserRole
		want string
	}{
		{models.RoleStudent, "/student/"},
		{models.RoleTeacher, "/teacher/"},
		{models.RoleCompany, "/company/"},
		{models.UserRole("unknown"), "/"},
		{models.UserRole(""), "/"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, destinationForRole(tt.role))
		})
	}
}
