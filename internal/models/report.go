package models

import "time"

const ReportStatusPending = "pending"

// Report snapshots the post title, reporter name, comment text and
// commenter email at filing time. The snapshots are an audit trail and
// are never re-synced when the source comment or post changes.
type Report struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	CommentID      int       `gorm:"index;not null" json:"comment_id"`
	PostID         int       `gorm:"index" json:"post_id"`
	PostTitle      string    `json:"post_title"`
	ReporterEmail  string    `json:"reporter_email"`
	ReporterName   string    `json:"reporter_name"`
	Reason         string    `gorm:"not null" json:"reason"`
	CommentText    string    `json:"comment_text"`
	CommenterEmail string    `json:"commenter_email"`
	Status         string    `gorm:"default:pending" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateReportRequest struct {
	CommentID     int    `json:"comment_id" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
	ReporterEmail string `json:"reporter_email" binding:"required,email"`
}
