package models

import "time"

type Announcement struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	AuthorName  string    `gorm:"not null" json:"author_name"`
	AuthorEmail string    `gorm:"not null" json:"author_email"`
	AuthorImage string    `json:"author_image"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"required,email"`
	AuthorImage string `json:"author_image"`
}
