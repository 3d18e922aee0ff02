package events

import "time"

// Topic names for the domain events published by the service layer.
const (
	TopicUserSignedUp     = "user.signed_up"
	TopicCourseCreated    = "course.created"
	TopicCourseEnrolled   = "course.enrolled"
	TopicContactSubmitted = "contact.submitted"
)

type UserSignedUp struct {
	AccountID uint      `json:"account_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	SignedUp  time.Time `json:"signed_up"`
}

type CourseCreated struct {
	CourseID     uint      `json:"course_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	InstructorID uint      `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type CourseEnrolled struct {
	StudentID  uint      `json:"student_id"`
	CourseID   uint      `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type ContactSubmitted struct {
	ContactID   uint      `json:"contact_id"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	SubmittedAt time.Time `json:"submitted_at"`
}
