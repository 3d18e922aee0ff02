package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/auth"
	"github.com/stashlop/sillora/internal/events"
	"github.com/stashlop/sillora/internal/models"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
	"github.com/stashlop/sillora/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	db        *gorm.DB
	validator *validator.Validator
	jwter     *auth.JWTer
	profiles  ProfileService
	publisher *events.Publisher
	logger    utils.Logger
}

func NewAuthService(repo repositories.Repository, db *gorm.DB, v *validator.Validator, jwter *auth.JWTer, profiles ProfileService, publisher *events.Publisher, logger utils.Logger) AuthService {
	return &authService{
		repo:      repo,
		db:        db,
		validator: v,
		jwter:     jwter,
		profiles:  profiles,
		publisher: publisher,
		logger:    logger,
	}
}

// Signup creates the account, its profile and the matching role record in one
// transaction, then issues a session token.
func (s *authService) Signup(ctx context.Context, req validator.SignupRequest) (*AuthResult, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if _, err := s.repo.Account().GetByUsername(ctx, tx, req.Username); err == nil {
			return fmt.Errorf("%w: username already taken", ErrAlreadyExists)
		} else if !repositories.IsNotFoundError(err) {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if _, err := s.repo.Account().GetByEmail(ctx, tx, req.Email); err == nil {
			return fmt.Errorf("%w: email already registered", ErrAlreadyExists)
		} else if !repositories.IsNotFoundError(err) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		if err := s.repo.Account().Create(ctx, tx, account); err != nil {
			return err
		}

		profile := &models.Profile{AccountID: account.ID, Role: req.Role}
		if err := s.repo.Profile().Create(ctx, tx, profile); err != nil {
			return err
		}

		return ensureRoleRecord(ctx, tx, s.repo, account, req.Role)
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.TopicUserSignedUp, events.UserSignedUp{
		AccountID: account.ID,
		Username:  account.Username,
		Email:     account.Email,
		Role:      string(req.Role),
		SignedUp:  time.Now(),
	})

	token, err := s.jwter.Issue(account.ID, account.Username, string(req.Role))
	if err != nil {
		return nil, err
	}

	utils.FromContext(ctx, s.logger).Info("account created",
		"account_id", account.ID, "username", account.Username, "role", req.Role)

	return &AuthResult{
		Token:       token,
		Account:     account,
		Role:        req.Role,
		Destination: destinationForRole(req.Role),
	}, nil
}

// Login verifies credentials and resolves the account's role before issuing
// the session token, so stale accounts are healed on their next login.
func (s *authService) Login(ctx context.Context, req validator.LoginRequest) (*AuthResult, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, errs)
	}

	account, err := s.repo.Account().GetByUsername(ctx, s.db, req.Username)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	role, err := s.profiles.Resolve(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	token, err := s.jwter.Issue(account.ID, account.Username, string(role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:       token,
		Account:     account,
		Role:        role,
		Destination: destinationForRole(role),
	}, nil
}
