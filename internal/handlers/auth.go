package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/forumnest/backend/internal/auth"
	"github.com/forumnest/backend/internal/middleware"
)

type AuthHandler struct {
	db *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{db: db}
}

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// production switches the cookie to Secure + SameSite=None; local
// development keeps Lax over plain HTTP.
func productionMode() bool {
	return os.Getenv("APP_ENV") == "production"
}

// IssueToken signs a session token for the supplied identity and sets it
// as an HTTP-only cookie. The guard only answers "who is this"; role and
// ownership checks happen per handler.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var input TokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokenString, err := auth.GenerateToken(input.Email, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	secure := productionMode()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.CookieName, tokenString, int(auth.TokenTTL.Seconds()), "/", "", secure, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	secure := productionMode()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.CookieName, "", -1, "/", "", secure, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
