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

type profileService struct {
	repo      repositories.Repository
	db        *gorm.DB
	validator *validator.Validator
	logger    utils.Logger
}

func NewProfileService(repo repositories.Repository, db *gorm.DB, v *validator.Validator, logger utils.Logger) ProfileService {
	return &profileService{repo: repo, db: db, validator: v, logger: logger}
}

// Resolve returns the account's role, lazily repairing missing state: an
// account without a profile gets one with the default student role, and a
// profile without its matching role record gets the record created with
// signup defaults. Repairs run in one transaction so concurrent resolves
// cannot leave partial state.
func (s *profileService) Resolve(ctx context.Context, accountID uint) (models.UserRole, error) {
	var role models.UserRole

	err := s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		account, err := s.repo.Account().GetByID(ctx, tx, accountID)
		if err != nil {
			if repositories.IsNotFoundError(err) {
				return &NotFoundError{Resource: "account", Fallback: "/login/"}
			}
			return fmt.Errorf("failed to load account: %w", err)
		}

		profile, err := s.repo.Profile().GetByAccount(ctx, tx, accountID)
		if err != nil {
			if !repositories.IsNotFoundError(err) {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			profile = &models.Profile{AccountID: accountID, Role: models.RoleStudent}
			if err := s.repo.Profile().Create(ctx, tx, profile); err != nil {
				return err
			}
			utils.FromContext(ctx, s.logger).Warn("created missing profile",
				"account_id", accountID, "role", profile.Role)
		}

		if err := ensureRoleRecord(ctx, tx, s.repo, account, profile.Role); err != nil {
			return err
		}

		role = profile.Role
		return nil
	})
	if err != nil {
		return "", err
	}
	return role, nil
}

func (s *profileService) Get(ctx context.Context, accountID uint) (*ProfilePage, error) {
	role, err := s.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.Account().GetByID(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	profile, err := s.repo.Profile().GetByAccount(ctx, s.db, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	page := &ProfilePage{Account: account, Profile: profile}
	switch role {
	case models.RoleTeacher:
		page.Teacher, err = s.repo.Teacher().GetByAccount(ctx, s.db, accountID)
	case models.RoleCompany:
		page.Company, err = s.repo.Company().GetByAccount(ctx, s.db, accountID)
	default:
		page.Student, err = s.repo.Student().GetByAccount(ctx, s.db, accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load role record: %w", err)
	}
	return page, nil
}

// Update applies the default-action profile edit. Shared fields always
// apply; teacher and company fields only apply when the account holds that
// role, others are ignored.
func (s *profileService) Update(ctx context.Context, accountID uint, req validator.ProfileUpdateRequest) (*ProfilePage, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	role, err := s.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		profile, err := s.repo.Profile().GetByAccount(ctx, tx, accountID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		applyString(&profile.Bio, req.Bio)
		applyString(&profile.Phone, req.Phone)
		applyString(&profile.Address, req.Address)
		applyString(&profile.Skills, req.Skills)
		applyString(&profile.Experience, req.Experience)
		applyString(&profile.Education, req.Education)

		if err := s.repo.Profile().Update(ctx, tx, profile); err != nil {
			return err
		}

		switch role {
		case models.RoleTeacher:
			teacher, err := s.repo.Teacher().GetByAccount(ctx, tx, accountID)
			if err != nil {
				return fmt.Errorf("failed to load teacher record: %w", err)
			}
			applyString(&teacher.Specialization, req.Specialization)
			applyString(&teacher.Bio, req.TeacherBio)
			if req.ExperienceYears != nil {
				teacher.ExperienceYears = *req.ExperienceYears
			}
			if req.Rating != nil {
				teacher.Rating = *req.Rating
			}
			return s.repo.Teacher().Update(ctx, tx, teacher)

		case models.RoleCompany:
			company, err := s.repo.Company().GetByAccount(ctx, tx, accountID)
			if err != nil {
				return fmt.Errorf("failed to load company record: %w", err)
			}
			applyString(&company.CompanyName, req.CompanyName)
			applyString(&company.Industry, req.Industry)
			applyString(&company.CompanySize, req.CompanySize)
			applyString(&company.Website, req.Website)
			applyString(&company.Description, req.Description)
			return s.repo.Company().Update(ctx, tx, company)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, accountID)
}

func (s *profileService) UpdateEmail(ctx context.Context, accountID uint, req validator.UpdateEmailRequest) error {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	existing, err := s.repo.Account().GetByEmail(ctx, s.db, req.NewEmail)
	if err != nil && !repositories.IsNotFoundError(err) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil && existing.ID != accountID {
		return fmt.Errorf("%w: email already in use", ErrAlreadyExists)
	}

	return s.repo.Account().UpdateEmail(ctx, s.db, accountID, req.NewEmail)
}

func (s *profileService) UpdatePicture(ctx context.Context, accountID uint, req validator.UpdatePictureRequest) error {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}
	if _, err := s.Resolve(ctx, accountID); err != nil {
		return err
	}
	return s.repo.Profile().UpdatePicture(ctx, s.db, accountID, req.PicturePath)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
