package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/forumnest/backend/internal/auth"
	"github.com/forumnest/backend/internal/logger"
	"github.com/forumnest/backend/internal/models"
)

// CookieName is the session cookie set by POST /jwt.
const CookieName = "token"

// Context keys populated by RequireAuth for downstream handlers.
const (
	CtxUserEmail = "user_email"
	CtxUserName  = "user_name"
)

// RequireAuth verifies the session cookie and attaches the caller's
// identity to the request context. No cookie is 401; a cookie that does
// not verify is 403. Role and ownership decisions are left to handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			logger.L().Debug("token rejected",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserName, claims.Name)
		c.Next()
	}
}

// RequireAdmin loads the authenticated caller's profile and rejects
// non-admins. Must run after RequireAuth.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxUserEmail)

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "admin access required"})
			return
		}

		c.Next()
	}
}

// UserEmail returns the authenticated email set by RequireAuth.
func UserEmail(c *gin.Context) (string, bool) {
	email := c.GetString(CtxUserEmail)
	return email, email != ""
}
