package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
	"github.com/stashlop/sillora/internal/validator"
)

type jobService struct {
	repo      repositories.Repository
	db        *gorm.DB
	validator *validator.Validator
	profiles  ProfileService
	logger    utils.Logger
}

func NewJobService(repo repositories.Repository, db *gorm.DB, v *validator.Validator, profiles ProfileService, logger utils.Logger) JobService {
	return &jobService{repo: repo, db: db, validator: v, profiles: profiles, logger: logger}
}

// List returns the job board, newest postings first.
func (s *jobService) List(ctx context.Context, filters repositories.JobFilters) ([]*models.Job, int64, error) {
	return s.repo.Job().List(ctx, s.db, filters)
}

// Create posts a job on behalf of the calling company account and links it
// to the company's posted-jobs list. The company name defaults to the
// caller's company record when the request leaves it empty.
func (s *jobService) Create(ctx context.Context, accountID uint, req validator.JobCreateRequest) (*models.Job, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	role, err := s.profiles.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleCompany {
		return nil, fmt.Errorf("%w: only companies can post jobs", ErrForbidden)
	}

	company, err := s.repo.Company().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		JobType:      req.JobType,
	}
	if job.Company == "" {
		job.Company = company.CompanyName
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.Job().Create(ctx, tx, job); err != nil {
			return err
		}
		return s.repo.Company().AddPostedJob(ctx, tx, company.ID, job.ID)
	})
	if err != nil {
		return nil, err
	}

	utils.FromContext(ctx, s.logger).Info("job posted",
		"job_id", job.ID, "company_id", company.ID, "title", job.Title)
	return job, nil
}
