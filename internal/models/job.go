package models

import "time"

type Job struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null;size:200"`
	Company      string    `json:"company" gorm:"not null;size:100"`
	Location     string    `json:"location" gorm:"size:100"`
	Description  string    `json:"description" gorm:"type:text"`
	Requirements string    `json:"requirements" gorm:"type:text"`
	SalaryRange  string    `json:"salary_range" gorm:"size:100"`
	JobType      string    `json:"job_type" gorm:"size:50;index"` // Full-time, Part-time, Contract
	PostedDate   time.Time `json:"posted_date" gorm:"autoCreateTime"`
}

func (Job) TableName() string {
	return "jobs"
}
