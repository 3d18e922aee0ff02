package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/events"
	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
	"github.com/stashlop/sillora/internal/validator"
)

const (
	homeCourseLimit      = 6
	homeTestimonialLimit = 3
)

type contentService struct {
	repo      repositories.Repository
	db        *gorm.DB
	validator *validator.Validator
	publisher *events.Publisher
	logger    utils.Logger
}

func NewContentService(repo repositories.Repository, db *gorm.DB, v *validator.Validator, publisher *events.Publisher, logger utils.Logger) ContentService {
	return &contentService{repo: repo, db: db, validator: v, publisher: publisher, logger: logger}
}

func (s *contentService) Home(ctx context.Context) (*HomePage, error) {
	courses, _, err := s.repo.Course().List(ctx, s.db, repositories.CourseFilters{
		Limit:     homeCourseLimit,
		SortBy:    "created_at",
		SortOrder: "desc",
	})
	if err != nil {
		return nil, err
	}
	testimonials, err := s.repo.Content().ListTestimonials(ctx, s.db, homeTestimonialLimit)
	if err != nil {
		return nil, err
	}
	return &HomePage{Courses: courses, Testimonials: testimonials}, nil
}

func (s *contentService) About(ctx context.Context) (*AboutPage, error) {
	team, err := s.repo.Content().ListTeamMembers(ctx, s.db)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.repo.Content().ListTestimonials(ctx, s.db, 0)
	if err != nil {
		return nil, err
	}
	return &AboutPage{TeamMembers: team, Testimonials: testimonials}, nil
}

func (s *contentService) Instructors(ctx context.Context) ([]*models.Instructor, error) {
	return s.repo.Content().ListInstructors(ctx, s.db)
}

func (s *contentService) Team(ctx context.Context) ([]*models.TeamMember, error) {
	return s.repo.Content().ListTeamMembers(ctx, s.db)
}

func (s *contentService) Testimonials(ctx context.Context) ([]*models.Testimonial, error) {
	return s.repo.Content().ListTestimonials(ctx, s.db, 0)
}

// SubmitContact stores a contact-form submission and announces it.
func (s *contentService) SubmitContact(ctx context.Context, req validator.ContactRequest) (*models.Contact, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.Content().CreateContact(ctx, s.db, contact); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.TopicContactSubmitted, events.ContactSubmitted{
		ContactID:   contact.ID,
		Email:       contact.Email,
		Subject:     contact.Subject,
		SubmittedAt: time.Now(),
	})

	utils.FromContext(ctx, s.logger).Info("contact submitted",
		"contact_id", contact.ID, "subject", contact.Subject)
	return contact, nil
}
