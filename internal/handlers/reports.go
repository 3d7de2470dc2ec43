package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/forumnest/backend/internal/models"
)

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// CreateReport files a report against a comment. The target comment and
// its parent post must both still exist; a missing reporter profile only
// degrades the stored name to a placeholder. Post title, reporter name,
// comment text and commenter email are snapshotted at filing time.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var input models.CreateReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var comment models.Comment
	if err := h.db.First(&comment, input.CommentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, comment.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	reporterName := "Anonymous"
	var reporter models.User
	if err := h.db.Where("email = ?", input.ReporterEmail).First(&reporter).Error; err == nil {
		reporterName = reporter.Name
	}

	report := models.Report{
		CommentID:      comment.ID,
		PostID:         post.ID,
		PostTitle:      post.Title,
		ReporterEmail:  input.ReporterEmail,
		ReporterName:   reporterName,
		Reason:         input.Reason,
		CommentText:    comment.CommentText,
		CommenterEmail: comment.AuthorEmail,
		Status:         models.ReportStatusPending,
	}

	if err := h.db.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReports lists all reports. Each report is re-joined to its live
// post to refresh the title; if the post has since been deleted the
// stored snapshot is served instead.
func (h *ReportHandler) GetReports(c *gin.Context) {
	var reports []models.Report

	if err := h.db.Order("created_at desc").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	items := []gin.H{}
	for _, report := range reports {
		title := report.PostTitle
		var post models.Post
		if err := h.db.First(&post, report.PostID).Error; err == nil {
			title = post.Title
		}

		items = append(items, gin.H{
			"id":              report.ID,
			"comment_id":      report.CommentID,
			"post_id":         report.PostID,
			"post_title":      title,
			"reporter_email":  report.ReporterEmail,
			"reporter_name":   report.ReporterName,
			"reason":          report.Reason,
			"comment_text":    report.CommentText,
			"commenter_email": report.CommenterEmail,
			"status":          report.Status,
			"created_at":      report.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, items)
}
