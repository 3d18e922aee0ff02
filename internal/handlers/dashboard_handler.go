package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
}

func NewDashboardHandler(base *BaseHandler) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base}
}

// Route handles GET /dashboard/ by redirecting the account to the dashboard
// for its resolved role.
func (h *DashboardHandler) Route(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login/")
		return
	}

	destination, err := h.services.Dashboard.Route(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, destination)
}

// StudentHome handles GET /student/
func (h *DashboardHandler) StudentHome(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	data, err := h.services.Dashboard.StudentHome(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// TeacherHome handles GET /teacher/
func (h *DashboardHandler) TeacherHome(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	data, err := h.services.Dashboard.TeacherHome(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// CompanyHome handles GET /company/
func (h *DashboardHandler) CompanyHome(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	data, err := h.services.Dashboard.CompanyHome(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
