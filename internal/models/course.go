package models

import "time"

// Course is owned by the teacher referenced as instructor; deleting the
// teacher cascades to their courses.
type Course struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"type:text"`

	InstructorID *uint    `json:"instructor_id" gorm:"index"`
	Instructor   *Teacher `json:"instructor,omitempty" gorm:"foreignKey:InstructorID;constraint:OnDelete:CASCADE"`

	Price     float64 `json:"price" gorm:"type:numeric(10,2)"`
	Category  string  `json:"category" gorm:"not null;size:100;index"`
	Duration  string  `json:"duration" gorm:"size:50"`
	Level     string  `json:"level" gorm:"size:50"`
	ImagePath string  `json:"image_path" gorm:"size:500"`

	Students []*Student `json:"-" gorm:"many2many:student_enrollments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
