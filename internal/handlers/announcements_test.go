package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/forumnest/backend/internal/middleware"
	"github.com/forumnest/backend/internal/models"
)

func newAnnouncementRouter(db *gorm.DB) *gin.Engine {
	handler := NewAnnouncementHandler(db)
	router := gin.New()
	router.GET("/announcements", handler.GetAnnouncements)
	router.POST("/announcements", middleware.RequireAuth(), middleware.RequireAdmin(db), handler.CreateAnnouncement)
	router.DELETE("/announcements/:id", middleware.RequireAuth(), middleware.RequireAdmin(db), handler.DeleteAnnouncement)
	return router
}

func validAnnouncement() map[string]interface{} {
	return map[string]interface{}{
		"title":        "Maintenance window",
		"description":  "Down for an hour on Sunday",
		"author_name":  "Admin",
		"author_email": "admin@x.com",
	}
}

func TestAnnouncementLifecycle(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@x.com", models.RoleAdmin)
	router := newAnnouncementRouter(db)
	cookie := sessionCookie(t, admin.Email, admin.Name)

	w := performRequest(router, "POST", "/announcements", validAnnouncement(), cookie)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeBody(t, w)["id"].(float64))

	// Reading is public.
	w = performRequest(router, "GET", "/announcements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = performRequest(router, "DELETE", fmt.Sprintf("/announcements/%d", id), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "DELETE", fmt.Sprintf("/announcements/%d", id), nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, "GET", "/announcements", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestCreateAnnouncementRequiresAllFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@x.com", models.RoleAdmin)
	router := newAnnouncementRouter(db)
	cookie := sessionCookie(t, admin.Email, admin.Name)

	for _, field := range []string{"title", "description", "author_name", "author_email"} {
		payload := validAnnouncement()
		delete(payload, field)

		w := performRequest(router, "POST", "/announcements", payload, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing %s", field)
	}
}

func TestAnnouncementWritesAreAdminOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	db := newTestDB(t)
	regular := seedUser(t, db, "Bob", "b@x.com", models.RoleUser)
	router := newAnnouncementRouter(db)

	w := performRequest(router, "POST", "/announcements", validAnnouncement())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(router, "POST", "/announcements", validAnnouncement(),
		sessionCookie(t, regular.Email, regular.Name))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
