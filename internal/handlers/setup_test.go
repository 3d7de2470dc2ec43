package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/forumnest/backend/internal/auth"
	"github.com/forumnest/backend/internal/database"
	"github.com/forumnest/backend/internal/middleware"
	"github.com/forumnest/backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestDB opens a fresh in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see an empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func performRequest(r http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// sessionCookie signs a token for the given identity, the same way
// POST /jwt does. JWT_SECRET must be set via t.Setenv first.
func sessionCookie(t *testing.T, email, name string) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(email, name)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.CookieName, Value: token}
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	user := models.User{
		Name:       name,
		Email:      email,
		Role:       role,
		Membership: models.MembershipNormal,
		Badge:      models.BadgeBronze,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, title, tag, authorEmail string) models.Post {
	t.Helper()
	post := models.Post{Title: title, Tag: tag, AuthorEmail: authorEmail}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func seedComment(t *testing.T, db *gorm.DB, postID int, authorEmail, text string) models.Comment {
	t.Helper()
	comment := models.Comment{PostID: postID, AuthorEmail: authorEmail, CommentText: text}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}
