package handlers

import (
	"gorm.io/gorm"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Post         *PostHandler
	Comment      *CommentHandler
	Announcement *AnnouncementHandler
	Report       *ReportHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(db),
		User:         NewUserHandler(db),
		Post:         NewPostHandler(db),
		Comment:      NewCommentHandler(db),
		Announcement: NewAnnouncementHandler(db),
		Report:       NewReportHandler(db),
	}
}
