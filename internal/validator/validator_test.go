package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stashlop/sillora/internal/models"
)

func TestSignupRequestValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       SignupRequest
		wantValid bool
		wantField string
	}{
		{
			name: "valid student",
			req: SignupRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "correcthorse",
				Role:     models.RoleStudent,
			},
			wantValid: true,
		},
		{
			name: "invalid role",
			req: SignupRequest{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "correcthorse",
				Role:     models.UserRole("admin"),
			},
			wantField: "Role",
		},
		{
			name: "short password",
			req: SignupRequest{
				Username: "carol",
				Email:    "carol@example.com",
				Password: "short",
				Role:     models.RoleTeacher,
			},
			wantField: "Password",
		},
		{
			name: "bad email",
			req: SignupRequest{
				Username: "dave",
				Email:    "not-an-email",
				Password: "correcthorse",
				Role:     models.RoleCompany,
			},
			wantField: "Email",
		},
		{
			name:      "missing everything",
			req:       SignupRequest{},
			wantField: "Username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.req)
			if tt.wantValid {
				assert.Empty(t, errs)
				return
			}
			assert.NotEmpty(t, errs)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestContactRequestValidation(t *testing.T) {
	v := New()

	valid := ContactRequest{
		Name:    "Eve",
		Email:   "eve@example.com",
		Subject: "Hello",
		Message: "I have a question about a course.",
	}
	assert.Empty(t, v.Validate(valid))

	missing := ContactRequest{Name: "Eve"}
	errs := v.Validate(missing)
	assert.NotEmpty(t, errs)
}

func TestJobCreateRequestJobType(t *testing.T) {
	v := New()

	ok := JobCreateRequest{Title: "Backend Engineer", Description: "Go services", JobType: "Full-time"}
	assert.Empty(t, v.Validate(ok))

	bad := JobCreateRequest{Title: "Backend Engineer", Description: "Go services", JobType: "Gig"}
	errs := v.Validate(bad)
	assert.NotEmpty(t, errs)
	assert.Equal(t, "JobType", errs[0].Field)
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{{Field: "Email", Message: "must be a valid email address"}}
	assert.Equal(t, "validation failed: Email must be a valid email address", errs.Error())

	many := ValidationErrors{{Field: "A"}, {Field: "B"}}
	assert.Equal(t, "validation failed: 2 field errors", many.Error())
}
