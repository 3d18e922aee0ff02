package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stashlop/sillora/internal/validator"
)

type ContentHandler struct {
	*BaseHandler
}

func NewContentHandler(base *BaseHandler) *ContentHandler {
	return &ContentHandler{BaseHandler: base}
}

// Home handles GET /. Signed-in accounts are dispatched to the dashboard for
// their role; anonymous visitors get the landing page.
func (h *ContentHandler) Home(c *gin.Context) {
	if accountID, ok := accountIDFrom(c); ok {
		destination, err := h.services.Dashboard.Route(c.Request.Context(), accountID)
		if err == nil {
			c.Redirect(http.StatusFound, destination)
			return
		}
		// Fall through to the landing page when routing fails.
	}

	page, err := h.services.Content.Home(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// About handles GET /about/
func (h *ContentHandler) About(c *gin.Context) {
	page, err := h.services.Content.About(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Instructors handles GET /instructors/
func (h *ContentHandler) Instructors(c *gin.Context) {
	instructors, err := h.services.Content.Instructors(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instructors": instructors})
}

// Team handles GET /team/
func (h *ContentHandler) Team(c *gin.Context) {
	team, err := h.services.Content.Team(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_members": team})
}

// Testimonials handles GET /testimonials/
func (h *ContentHandler) Testimonials(c *gin.Context) {
	testimonials, err := h.services.Content.Testimonials(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
}

// ContactPage handles GET /contact/, listing the team members a visitor can
// reach alongside the form contract.
func (h *ContentHandler) ContactPage(c *gin.Context) {
	team, err := h.services.Content.Team(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"team_members": team,
		"fields":       []string{"name", "email", "subject", "message"},
	})
}

// SubmitContact handles POST /contact/
func (h *ContentHandler) SubmitContact(c *gin.Context) {
	var req validator.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	contact, err := h.services.Content.SubmitContact(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}
