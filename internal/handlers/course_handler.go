package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stashlop/sillora/internal/validator"
)

type CourseHandler struct {
	*BaseHandler
}

func NewCourseHandler(base *BaseHandler) *CourseHandler {
	return &CourseHandler{BaseHandler: base}
}

// List handles GET /courses/ with an optional category filter.
func (h *CourseHandler) List(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	var accountID *uint
	if id, ok := accountIDFrom(c); ok {
		accountID = &id
	}

	page, err := h.services.Course.List(c.Request.Context(), accountID, category)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get handles GET /course/:id/
func (h *CourseHandler) Get(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		h.badRequest(c, "invalid course id")
		return
	}

	var accountID *uint
	if id, ok := accountIDFrom(c); ok {
		accountID = &id
	}

	page, err := h.services.Course.Get(c.Request.Context(), accountID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create handles POST /teacher/create-course/
func (h *CourseHandler) Create(c *gin.Context) {
	accountID, _ := accountIDFrom(c)

	var req validator.CourseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	course, err := h.services.Course.Create(c.Request.Context(), accountID, req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// ToggleSave handles POST /student/toggle-save/:id/
func (h *CourseHandler) ToggleSave(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		h.badRequest(c, "invalid course id")
		return
	}

	saved, err := h.services.Course.ToggleSave(c.Request.Context(), accountID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// Enroll handles POST /student/enroll/:id/
func (h *CourseHandler) Enroll(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		h.badRequest(c, "invalid course id")
		return
	}

	if err := h.services.Course.Enroll(c.Request.Context(), accountID, courseID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrolled": true})
}

// Certificate handles GET /student/certificate/:id/
func (h *CourseHandler) Certificate(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		h.badRequest(c, "invalid course id")
		return
	}

	cert, err := h.services.Course.Certificate(c.Request.Context(), accountID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
