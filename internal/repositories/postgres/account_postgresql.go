package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
)

type AccountPostgreSQL struct {
	db *gorm.DB
}

func NewAccountPostgreSQL(db *gorm.DB) repositories.AccountRepository {
	return &AccountPostgreSQL{db: db}
}

func (a *AccountPostgreSQL) Create(ctx context.Context, tx *gorm.DB, account *models.Account) error {
	if err := tx.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (a *AccountPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Account, error) {
	var account models.Account
	if err := tx.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *AccountPostgreSQL) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*models.Account, error) {
	var account models.Account
	if err := tx.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *AccountPostgreSQL) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.Account, error) {
	var account models.Account
	if err := tx.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *AccountPostgreSQL) UpdateEmail(ctx context.Context, tx *gorm.DB, id uint, email string) error {
	if err := tx.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		Update("email", email).Error; err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}
	return nil
}

func (a *AccountPostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	if err := tx.WithContext(ctx).Delete(&models.Account{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
