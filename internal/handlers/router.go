package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stashlop/sillora/internal/auth"
	"github.com/stashlop/sillora/internal/repositories"
	"github.com/stashlop/sillora/internal/services"
	"github.com/stashlop/sillora/internal/utils"
)

// HandlerManager holds all HTTP handlers.
type HandlerManager struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Course    *CourseHandler
	Profile   *ProfileHandler
	Teacher   *TeacherHandler
	Job       *JobHandler
	Content   *ContentHandler
	Export    *ExportHandler

	jwter       *auth.JWTer
	repoManager repositories.RepositoryManager
	logger      utils.Logger
}

func NewHandlerManager(sm *services.ServiceManager, jwter *auth.JWTer, repoManager repositories.RepositoryManager, logger utils.Logger) *HandlerManager {
	base := NewBaseHandler(sm, logger)
	return &HandlerManager{
		Auth:        NewAuthHandler(base),
		Dashboard:   NewDashboardHandler(base),
		Course:      NewCourseHandler(base),
		Profile:     NewProfileHandler(base),
		Teacher:     NewTeacherHandler(base),
		Job:         NewJobHandler(base),
		Content:     NewContentHandler(base),
		Export:      NewExportHandler(base),
		jwter:       jwter,
		repoManager: repoManager,
		logger:      logger,
	}
}

// SetupRoutes registers the full route table.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	optional := OptionalAuth(hm.jwter)
	required := RequireAuth(hm.jwter)

	// Public content; / dispatches signed-in accounts to their dashboard
	router.GET("/", optional, hm.Content.Home)
	router.GET("/about/", hm.Content.About)
	router.GET("/team/", hm.Content.Team)
	router.GET("/testimonials/", hm.Content.Testimonials)
	router.GET("/instructors/", hm.Content.Instructors)
	router.GET("/contact/", hm.Content.ContactPage)
	router.POST("/contact/", hm.Content.SubmitContact)

	// Auth
	router.GET("/signup/", hm.Auth.SignupForm)
	router.POST("/signup/", hm.Auth.Signup)
	router.GET("/login/", hm.Auth.LoginForm)
	router.POST("/login/", hm.Auth.Login)
	router.POST("/logout/", hm.Auth.Logout)

	// Catalog (anonymous browsing allowed, saved state when signed in)
	router.GET("/courses/", optional, hm.Course.List)
	router.GET("/course/:id/", optional, hm.Course.Get)

	// Job board
	router.GET("/jobs/", hm.Job.List)
	router.POST("/jobs/", required, hm.Job.Create)

	// Dashboards
	router.GET("/dashboard/", optional, hm.Dashboard.Route)
	router.GET("/student/", required, hm.Dashboard.StudentHome)
	router.POST("/student/toggle-save/:id/", required, hm.Course.ToggleSave)
	router.POST("/student/enroll/:id/", required, hm.Course.Enroll)
	router.GET("/student/certificate/:id/", required, hm.Course.Certificate)
	router.GET("/teacher/", required, hm.Dashboard.TeacherHome)
	router.POST("/teacher/create-course/", required, hm.Course.Create)
	router.GET("/teacher/courses/", required, hm.Teacher.Courses)
	router.GET("/teacher/students/", required, hm.Teacher.Students)
	router.GET("/teacher/export/roster/", required, hm.Export.TeacherRoster)
	router.GET("/company/", required, hm.Dashboard.CompanyHome)

	// Profile
	router.GET("/profile/", required, hm.Profile.Get)
	router.POST("/profile/", required, hm.Profile.Update)

	router.GET("/health", hm.healthCheck)
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	if err := hm.repoManager.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
