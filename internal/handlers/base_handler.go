package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stashlop/sillora/internal/services"
	"github.com/stashlop/sillora/internal/utils"
	"github.com/stashlop/sillora/internal/validator"
)

// ErrorResponse is the uniform error body. Fallback, when set, is the path
// the client should navigate to instead of showing an error page.
type ErrorResponse struct {
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Fallback string      `json:"fallback,omitempty"`
}

// BaseHandler carries the dependencies every handler needs.
type BaseHandler struct {
	services *services.ServiceManager
	logger   utils.Logger
}

func NewBaseHandler(sm *services.ServiceManager, logger utils.Logger) *BaseHandler {
	return &BaseHandler{services: sm, logger: logger}
}

// handleServiceError maps service errors onto HTTP responses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Details: validationErrs,
		})
		return
	}

	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message:  notFound.Error(),
			Fallback: notFound.Fallback,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	default:
		utils.FromContext(c.Request.Context(), h.logger).Error("internal error",
			"path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
	}
}

func (h *BaseHandler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg})
}
