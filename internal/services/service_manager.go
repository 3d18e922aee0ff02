package services

import (
	"gorm.io/gorm"

	"github.com/stashlop/sillora/internal/auth"
	"github.com/stashlop/sillora/internal/events"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/utils"
	"github.com/stashlop/sillora/internal/validator"
)

// ServiceManager wires all services over a shared repository, database
// handle, validator and event publisher.
type ServiceManager struct {
	Auth      AuthService
	Profile   ProfileService
	Dashboard DashboardService
	Course    CourseService
	Teacher   TeacherService
	Job       JobService
	Content   ContentService
	Export    ExportService
}

type ServiceManagerConfig struct {
	Repo      repositories.Repository
	DB        *gorm.DB
	JWTer     *auth.JWTer
	Publisher *events.Publisher
	Logger    utils.Logger
}

func NewServiceManager(cfg ServiceManagerConfig) *ServiceManager {
	v := validator.New()

	profiles := NewProfileService(cfg.Repo, cfg.DB, v, cfg.Logger)
	teachers := NewTeacherService(cfg.Repo, cfg.DB, cfg.Logger)

	return &ServiceManager{
		Auth:      NewAuthService(cfg.Repo, cfg.DB, v, cfg.JWTer, profiles, cfg.Publisher, cfg.Logger),
		Profile:   profiles,
		Dashboard: NewDashboardService(cfg.Repo, cfg.DB, profiles, teachers, cfg.Logger),
		Course:    NewCourseService(cfg.Repo, cfg.DB, v, profiles, cfg.Publisher, cfg.Logger),
		Teacher:   teachers,
		Job:       NewJobService(cfg.Repo, cfg.DB, v, profiles, cfg.Logger),
		Content:   NewContentService(cfg.Repo, cfg.DB, v, cfg.Publisher, cfg.Logger),
		Export:    NewExportService(teachers, cfg.Logger),
	}
}
