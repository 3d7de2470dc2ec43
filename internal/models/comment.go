package models

import "time"

type Comment struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	PostID      int       `gorm:"index;not null" json:"post_id"`
	AuthorEmail string    `json:"author_email"`
	AuthorImage string    `json:"author_image"`
	CommentText string    `gorm:"not null" json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	PostID      int    `json:"post_id"`
	AuthorEmail string `json:"author_email" binding:"required,email"`
	AuthorImage string `json:"author_image"`
	CommentText string `json:"comment_text" binding:"required"`
}

type UpdateCommentRequest struct {
	CommentText string `json:"comment_text" binding:"required"`
}
