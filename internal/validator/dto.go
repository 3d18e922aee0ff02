package validator

import "github.com/stashlop/sillora/internal/models"

// SignupRequest creates an account, its profile and the matching role record.
type SignupRequest struct {
	Username  string          `json:"username" validate:"required,min=3,max=150"`
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8,max=128"`
	Role      models.UserRole `json:"role" validate:"required,user_role"`
	FirstName string          `json:"first_name" validate:"omitempty,max=100"`
	LastName  string          `json:"last_name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type CourseCreateRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,min=0"`
	Duration    string  `json:"duration" validate:"omitempty,max=50"`
	Level       string  `json:"level" validate:"omitempty,max=50"`
}

// ProfileUpdateRequest is the default-action profile update. Which fields
// apply depends on the account's role; unset pointers leave fields untouched.
type ProfileUpdateRequest struct {
	// Shared profile fields (all roles)
	Bio        *string `json:"bio"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Address    *string `json:"address"`
	Skills     *string `json:"skills"`
	Experience *string `json:"experience"`
	Education  *string `json:"education"`

	// Teacher record fields
	Specialization  *string  `json:"specialization" validate:"omitempty,max=100"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,min=0"`
	TeacherBio      *string  `json:"teacher_bio"`
	Rating          *float64 `json:"rating" validate:"omitempty,min=0,max=5"`

	// Company record fields
	CompanyName *string `json:"company_name" validate:"omitempty,max=200"`
	Industry    *string `json:"industry" validate:"omitempty,max=100"`
	CompanySize *string `json:"company_size" validate:"omitempty,max=50"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description"`
}

type JobCreateRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Company      string `json:"company" validate:"omitempty,max=100"`
	Location     string `json:"location" validate:"omitempty,max=100"`
	Description  string `json:"description" validate:"required"`
	Requirements string `json:"requirements"`
	SalaryRange  string `json:"salary_range" validate:"omitempty,max=100"`
	JobType      string `json:"job_type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"new_email" validate:"required,email"`
}

type UpdatePictureRequest struct {
	PicturePath string `json:"picture_path" validate:"required,max=500"`
}
