package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumnest/backend/internal/auth"
	"github.com/forumnest/backend/internal/middleware"
)

func TestIssueTokenSetsCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	handler := NewAuthHandler(db)

	router := gin.New()
	router.POST("/jwt", handler.IssueToken)

	w := performRequest(router, "POST", "/jwt", map[string]interface{}{
		"email": "a@x.com",
		"name":  "Alice",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, middleware.CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	claims, err := auth.ValidateToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestIssueTokenValidation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	handler := NewAuthHandler(db)

	router := gin.New()
	router.POST("/jwt", handler.IssueToken)

	w := performRequest(router, "POST", "/jwt", map[string]interface{}{"name": "NoEmail"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, "POST", "/jwt", map[string]interface{}{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCookieRoundTripsThroughGuard(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	handler := NewAuthHandler(db)

	router := gin.New()
	router.POST("/jwt", handler.IssueToken)
	router.GET("/whoami", middleware.RequireAuth(), func(c *gin.Context) {
		email, _ := middleware.UserEmail(c)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	w := performRequest(router, "POST", "/jwt", map[string]interface{}{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	issued := w.Result().Cookies()[0]

	w = performRequest(router, "GET", "/whoami", nil, issued)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@x.com", decodeBody(t, w)["email"])
}

func TestGuardRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// No token at all: 401.
	w := performRequest(router, "GET", "/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token: 403, not 401.
	w = performRequest(router, "GET", "/protected", nil,
		&http.Cookie{Name: middleware.CookieName, Value: "not-a-jwt"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Expired token: 403.
	expired, err := auth.GenerateTokenWithExpiry("a@x.com", "Alice", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	w = performRequest(router, "GET", "/protected", nil,
		&http.Cookie{Name: middleware.CookieName, Value: expired})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	db := newTestDB(t)
	handler := NewAuthHandler(db)

	router := gin.New()
	router.POST("/logout", handler.Logout)

	w := performRequest(router, "POST", "/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
