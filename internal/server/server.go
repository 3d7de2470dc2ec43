package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/forumnest/backend/internal/database"
	"github.com/forumnest/backend/internal/handlers"
	"github.com/forumnest/backend/internal/logger"
	"github.com/forumnest/backend/internal/middleware"
)

// NewServer wires the database, handlers and router into an HTTP server.
func NewServer() (*http.Server, database.Service, error) {
	db, err := database.New()
	if err != nil {
		return nil, nil, err
	}

	handler := handlers.NewHandler(db.GetDB())
	router := NewRouter(handler, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000" // local dev fallback
	}

	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.L().Info("server starting", zap.String("port", port))

	return server, db, nil
}

// NewRouter builds the route table. Every route is registered here so
// the mapping from method+path to handler is visible in one place.
func NewRouter(h *handlers.Handler, db database.Service) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "forum server is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, db.Health())
	})

	gormDB := db.GetDB()
	authed := middleware.RequireAuth()
	admin := middleware.RequireAdmin(gormDB)

	// Session
	r.POST("/jwt", h.Auth.IssueToken)
	r.POST("/logout", h.Auth.Logout)

	// Users
	r.POST("/users", h.User.CreateUser)
	r.GET("/users", h.User.GetUsers)
	r.GET("/users/:email", h.User.GetUser)
	r.PUT("/users/toggle-role/:id", authed, admin, h.User.ToggleRole)
	r.PUT("/users/membership/:email", authed, admin, h.User.UpdateMembership)

	// Posts
	r.POST("/posts", h.Post.CreatePost)
	r.GET("/posts", h.Post.GetPosts)
	r.GET("/posts/popular", h.Post.GetPopularPosts)
	r.GET("/posts/search/keyword", h.Post.SearchPosts)
	r.GET("/posts/:id", h.Post.GetPost)
	r.GET("/posts/user/:email", h.Post.GetUserPosts)
	r.GET("/posts/recent/:email", h.Post.GetRecentUserPosts)
	r.GET("/posts/count/:email", h.Post.CountUserPosts)
	r.DELETE("/posts/:id", authed, h.Post.DeletePost)
	r.POST("/posts/:id/upvote", h.Post.UpvotePost)
	r.POST("/posts/:id/downvote", h.Post.DownvotePost)

	// Comments
	r.POST("/comments", h.Comment.CreateComment)
	r.POST("/posts/:id/comments", h.Comment.CreatePostComment)
	r.GET("/comments/:postId", h.Comment.GetComments)
	r.PUT("/comments/:id", authed, h.Comment.UpdateComment)
	r.DELETE("/comments/:id", authed, h.Comment.DeleteComment)

	// Reports
	r.POST("/reports", h.Report.CreateReport)
	r.GET("/reports", authed, admin, h.Report.GetReports)

	// Announcements
	r.GET("/announcements", h.Announcement.GetAnnouncements)
	r.POST("/announcements", authed, admin, h.Announcement.CreateAnnouncement)
	r.DELETE("/announcements/:id", authed, admin, h.Announcement.DeleteAnnouncement)

	return r
}
