package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleCompany UserRole = "company"
)

// Valid reports whether the role is one of the known variants.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleCompany:
		return true
	}
	return false
}

// Account is the authenticated identity. Every account owns exactly one
// Profile and exactly one role record matching the profile's role.
type Account struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;not null;size:150"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	FirstName    string `json:"first_name" gorm:"size:100"`
	LastName     string `json:"last_name" gorm:"size:100"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Account) TableName() string {
	return "users"
}

// FullName joins first and last name, empty when neither is set.
func (a *Account) FullName() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	default:
		return a.LastName
	}
}

// Profile carries the role tag plus the free-form bio/contact fields shared
// by all roles. The role-specific payload lives in the Student/Teacher/Company
// record keyed by the same account.
type Profile struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	AccountID uint     `json:"account_id" gorm:"uniqueIndex;not null"`
	Account   *Account `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Role      UserRole `json:"role" gorm:"not null;size:20;default:student"`

	Bio         string `json:"bio" gorm:"type:text"`
	PicturePath string `json:"picture_path" gorm:"size:500"`
	Phone       string `json:"phone" gorm:"size:20"`
	Address     string `json:"address" gorm:"type:text"`
	Skills      string `json:"skills" gorm:"type:text"`
	Experience  string `json:"experience" gorm:"type:text"`
	Education   string `json:"education" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
