package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
)

type ProfilePostgreSQL struct {
	db *gorm.DB
}

func NewProfilePostgreSQL(db *gorm.DB) repositories.ProfileRepository {
	return &ProfilePostgreSQL{db: db}
}

func (p *ProfilePostgreSQL) Create(ctx context.Context, tx *gorm.DB, profile *models.Profile) error {
	if err := tx.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (p *ProfilePostgreSQL) GetByAccount(ctx context.Context, tx *gorm.DB, accountID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := tx.WithContext(ctx).Where("account_id = ?", accountID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *ProfilePostgreSQL) Update(ctx context.Context, tx *gorm.DB, profile *models.Profile) error {
	if err := tx.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (p *ProfilePostgreSQL) UpdatePicture(ctx context.Context, tx *gorm.DB, accountID uint, path string) error {
	if err := tx.WithContext(ctx).
		Model(&models.Profile{}).
		Where("account_id = ?", accountID).
		Update("picture_path", path).Error; err != nil {
		return fmt.Errorf("failed to update profile picture: %w", err)
	}
	return nil
}
