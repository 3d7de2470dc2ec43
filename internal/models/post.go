package models

import "time"

type Post struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Body        string    `json:"body"`
	Tag         string    `json:"tag"`
	AuthorEmail string    `gorm:"index" json:"author_email"`
	AuthorName  string    `json:"author_name"`
	AuthorImage *string   `json:"author_image"`
	UpVote      int       `gorm:"default:0" json:"up_vote"`
	DownVote    int       `gorm:"default:0" json:"down_vote"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreatePostRequest struct {
	Title       string  `json:"title" binding:"required"`
	Body        string  `json:"body"`
	Tag         string  `json:"tag"`
	AuthorEmail string  `json:"author_email" binding:"required,email"`
	AuthorName  string  `json:"author_name"`
	AuthorImage *string `json:"author_image"`
}
