package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashlop/sillora/internal/auth"
	"github.com/stashlop/sillora/internal/config"
)

func newTestRouter(jwter *auth.JWTer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/private", RequireAuth(jwter), func(c *gin.Context) {
		id, _ := accountIDFrom(c)
		c.JSON(http.StatusOK, gin.H{"account_id": id})
	})
	router.GET("/open", OptionalAuth(jwter), func(c *gin.Context) {
		if id, ok := accountIDFrom(c); ok {
			c.JSON(http.StatusOK, gin.H{"account_id": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})
	return router
}

func testJWTer() *auth.JWTer {
	return auth.NewJWTer(config.JWTConfig{Secret: "test", Issuer: "sillora-test", TTL: time.Hour})
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router := newTestRouter(testJWTer())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/login/")
}

func TestRequireAuthAcceptsBearerToken(t *testing.T) {
	jwter := testJWTer()
	router := newTestRouter(jwter)

	token, err := jwter.Issue(42, "alice", "student")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestRequireAuthAcceptsSessionCookie(t *testing.T) {
	jwter := testJWTer()
	router := newTestRouter(jwter)

	token, err := jwter.Issue(7, "bob", "teacher")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "7")
}

func TestRequireAuthRejectsTamperedToken(t *testing.T) {
	jwter := testJWTer()
	router := newTestRouter(jwter)

	token, err := jwter.Issue(7, "bob", "teacher")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	router := newTestRouter(testJWTer())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}
