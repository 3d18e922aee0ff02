package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/stashlop/sillora/internal/validator"
)

type ProfileHandler struct {
	*BaseHandler
}

func NewProfileHandler(base *BaseHandler) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base}
}

// Get handles GET /profile/
func (h *ProfileHandler) Get(c *gin.Context) {
	accountID, _ := accountIDFrom(c)
	page, err := h.services.Profile.Get(c.Request.Context(), accountID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Update handles POST /profile/. The "action" field selects the operation:
// update_picture and update_email are targeted edits, anything else is the
// full profile update.
func (h *ProfileHandler) Update(c *gin.Context) {
	accountID, _ := accountIDFrom(c)

	var envelope struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindBodyWith(&envelope, binding.JSON); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	switch envelope.Action {
	case "update_picture":
		var req validator.UpdatePictureRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			h.badRequest(c, "invalid request body")
			return
		}
		if err := h.services.Profile.UpdatePicture(c.Request.Context(), accountID, req); err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": "picture"})

	case "update_email":
		var req validator.UpdateEmailRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			h.badRequest(c, "invalid request body")
			return
		}
		if err := h.services.Profile.UpdateEmail(c.Request.Context(), accountID, req); err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": "email"})

	default:
		var req validator.ProfileUpdateRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			h.badRequest(c, "invalid request body")
			return
		}
		page, err := h.services.Profile.Update(c.Request.Context(), accountID, req)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
