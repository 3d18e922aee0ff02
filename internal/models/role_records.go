package models

import (
	"time"

	"gorm.io/datatypes"
)

// Student is the role record for role=student. Progress maps course IDs
// (stringified) to completion percentages; it is free-form state set by
// external tooling, so readers must tolerate malformed entries.
type Student struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	AccountID      uint      `json:"account_id" gorm:"uniqueIndex;not null"`
	Account        *Account  `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	EnrollmentDate time.Time `json:"enrollment_date" gorm:"autoCreateTime"`

	EnrolledCourses []*Course `json:"enrolled_courses,omitempty" gorm:"many2many:student_enrollments"`
	SavedCourses    []*Course `json:"saved_courses,omitempty" gorm:"many2many:student_saved_courses"`

	Progress datatypes.JSONMap `json:"progress" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// Teacher is the role record for role=teacher. TotalStudents, TotalCourses
// and StudentProgressAvg are derived fields recomputed on read, never
// independently authoritative.
type Teacher struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	AccountID uint     `json:"account_id" gorm:"uniqueIndex;not null"`
	Account   *Account `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`

	Specialization  string  `json:"specialization" gorm:"size:100;default:Not specified"`
	ExperienceYears int     `json:"experience_years" gorm:"default:0"`
	Bio             string  `json:"bio" gorm:"type:text"`
	Rating          float64 `json:"rating" gorm:"type:numeric(3,2);default:0"`
	IsVerified      bool    `json:"is_verified" gorm:"default:false"`

	TotalStudents      int     `json:"total_students" gorm:"default:0"`
	TotalCourses       int     `json:"total_courses" gorm:"default:0"`
	UpcomingClasses    int     `json:"upcoming_classes" gorm:"default:0"`
	StudentProgressAvg float64 `json:"student_progress_avg" gorm:"type:numeric(5,2);default:0"`

	ResumePath       string `json:"resume_path" gorm:"size:500"`
	CertificatesPath string `json:"certificates_path" gorm:"size:500"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Teacher) TableName() string {
	return "teachers"
}

// Company is the role record for role=company.
type Company struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	AccountID uint     `json:"account_id" gorm:"uniqueIndex;not null"`
	Account   *Account `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`

	CompanyName string `json:"company_name" gorm:"size:200"`
	Industry    string `json:"industry" gorm:"size:100"`
	CompanySize string `json:"company_size" gorm:"size:50"`
	Website     string `json:"website" gorm:"size:500"`
	Description string `json:"description" gorm:"type:text"`

	JobsPosted []*Job `json:"jobs_posted,omitempty" gorm:"many2many:company_jobs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}
