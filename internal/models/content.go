package models

import "time"

// Content records below are independent rows with no cross-entity
// invariants beyond basic field constraints.

// Instructor is the public instructor listing, separate from the Teacher
// role record (it covers guest instructors with no account).
type Instructor struct {
	ID              uint    `json:"id" gorm:"primaryKey"`
	Name            string  `json:"name" gorm:"not null;size:100"`
	Bio             string  `json:"bio" gorm:"type:text"`
	ImagePath       string  `json:"image_path" gorm:"size:500"`
	Specialization  string  `json:"specialization" gorm:"size:100"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `json:"rating" gorm:"type:numeric(3,2);default:0"`
}

func (Instructor) TableName() string {
	return "instructors"
}

type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Position  string    `json:"position" gorm:"size:100"`
	Company   string    `json:"company" gorm:"size:100"`
	Content   string    `json:"content" gorm:"type:text"`
	ImagePath string    `json:"image_path" gorm:"size:500"`
	Rating    int       `json:"rating" gorm:"not null"` // 1..5
	CreatedAt time.Time `json:"created_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}

type TeamMember struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null;size:100"`
	Position  string `json:"position" gorm:"size:100"`
	Bio       string `json:"bio" gorm:"type:text"`
	ImagePath string `json:"image_path" gorm:"size:500"`
	Email     string `json:"email" gorm:"size:255"`
	LinkedIn  string `json:"linkedin" gorm:"size:500"`
	Twitter   string `json:"twitter" gorm:"size:500"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"not null;size:255"`
	Subject   string    `json:"subject" gorm:"not null;size:200"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
