package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stashlop/sillora/internal/auth"
)

const (
	contextAccountID = "account_id"
	contextUsername  = "username"
	contextRole      = "role"

	// sessionCookie mirrors the token for browser clients.
	sessionCookie = "session"
)

// RequireAuth rejects requests without a valid session token.
func RequireAuth(jwter *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseSession(c, jwter)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message:  "authentication required",
				Fallback: "/login/",
			})
			return
		}
		setSession(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the session when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(jwter *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseSession(c, jwter); ok {
			setSession(c, claims)
		}
		c.Next()
	}
}

func parseSession(c *gin.Context, jwter *auth.JWTer) (*auth.Claims, bool) {
	token := ""
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	} else if cookie, err := c.Cookie(sessionCookie); err == nil {
		token = cookie
	}
	if token == "" {
		return nil, false
	}

	claims, err := jwter.Parse(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setSession(c *gin.Context, claims *auth.Claims) {
	c.Set(contextAccountID, claims.AccountID)
	c.Set(contextUsername, claims.Username)
	c.Set(contextRole, claims.Role)
}

// accountIDFrom returns the authenticated account ID, if any.
func accountIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(contextAccountID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
