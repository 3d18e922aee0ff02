package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/cache"
	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
)

type ContentPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewContentPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.ContentRepository {
	return &ContentPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (c *ContentPostgreSQL) ListInstructors(ctx context.Context, tx *gorm.DB) ([]*models.Instructor, error) {
	var instructors []*models.Instructor
	err := c.cacheManager.Content.CacheOrExecute(ctx, "instructors", &instructors, cache.ContentCacheConfig.TTL, func() (interface{}, error) {
		var rows []*models.Instructor
		if err := tx.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list instructors: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return instructors, nil
}

func (c *ContentPostgreSQL) ListTestimonials(ctx context.Context, tx *gorm.DB, limit int) ([]*models.Testimonial, error) {
	var testimonials []*models.Testimonial
	query := tx.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

func (c *ContentPostgreSQL) ListTeamMembers(ctx context.Context, tx *gorm.DB) ([]*models.TeamMember, error) {
	var members []*models.TeamMember
	err := c.cacheManager.Content.CacheOrExecute(ctx, "team", &members, cache.ContentCacheConfig.TTL, func() (interface{}, error) {
		var rows []*models.TeamMember
		if err := tx.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list team members: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (c *ContentPostgreSQL) CreateContact(ctx context.Context, tx *gorm.DB, contact *models.Contact) error {
	if err := tx.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}
