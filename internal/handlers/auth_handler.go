package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stashlop/sillora/internal/validator"
)

type AuthHandler struct {
	*BaseHandler
}

func NewAuthHandler(base *BaseHandler) *AuthHandler {
	return &AuthHandler{BaseHandler: base}
}

// Signup handles POST /signup/
func (h *AuthHandler) Signup(c *gin.Context) {
	var req validator.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	result, err := h.services.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	setSessionCookie(c, result.Token)
	c.JSON(http.StatusCreated, result)
}

// Login handles POST /login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req validator.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body")
		return
	}

	result, err := h.services.Auth.Login(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	setSessionCookie(c, result.Token)
	c.JSON(http.StatusOK, result)
}

// SignupForm handles GET /signup/
func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "email", "password", "role", "first_name", "last_name"},
		"roles":  []string{"student", "teacher", "company"},
	})
}

// LoginForm handles GET /login/
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"username", "password"}})
}

// Logout handles POST /logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"destination": "/"})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
}
