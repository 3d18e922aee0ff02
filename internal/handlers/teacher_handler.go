package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TeacherHandler struct {
	*BaseHandler
}

func NewTeacherHandler(base *BaseHandler) *TeacherHandler {
	return &TeacherHandler{BaseHandler: base}
}

// Courses handles GET /teacher/courses/
func (h *TeacherHandler) Courses(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	courses, err := h.services.Teacher.Courses(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// Students handles GET /teacher/students/
func (h *TeacherHandler) Students(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	roster, err := h.services.Teacher.Roster(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": roster})
}
