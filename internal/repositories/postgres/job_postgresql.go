package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
)

type JobPostgreSQL struct {
	db *gorm.DB
}

func NewJobPostgreSQL(db *gorm.DB) repositories.JobRepository {
	return &JobPostgreSQL{db: db}
}

func (j *JobPostgreSQL) Create(ctx context.Context, tx *gorm.DB, job *models.Job) error {
	if err := tx.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (j *JobPostgreSQL) List(ctx context.Context, tx *gorm.DB, filters repositories.JobFilters) ([]*models.Job, int64, error) {
	query := tx.WithContext(ctx).Model(&models.Job{})

	if filters.JobType != nil {
		query = query.Where("job_type = ?", *filters.JobType)
	}
	if filters.Location != nil {
		query = query.Where("location = ?", *filters.Location)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query = query.Order("posted_date DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	var jobs []*models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, total, nil
}
