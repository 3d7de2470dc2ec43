package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/forumnest/backend/internal/middleware"
	"github.com/forumnest/backend/internal/models"
)

const defaultPageSize = 5

type PostHandler struct {
	db *gorm.DB
}

func NewPostHandler(db *gorm.DB) *PostHandler {
	return &PostHandler{db: db}
}

func (h *PostHandler) countComments(postID int) int64 {
	var count int64
	h.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count)
	return count
}

// pageParams reads ?page and ?limit with the listing defaults.
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 {
		limit = defaultPageSize
	}
	return page, limit
}

func (h *PostHandler) postListItem(post models.Post) gin.H {
	return gin.H{
		"id":            post.ID,
		"title":         post.Title,
		"body":          post.Body,
		"tag":           post.Tag,
		"author_email":  post.AuthorEmail,
		"author_name":   post.AuthorName,
		"author_image":  post.AuthorImage,
		"up_vote":       post.UpVote,
		"down_vote":     post.DownVote,
		"comment_count": h.countComments(post.ID),
		"created_at":    post.CreatedAt,
	}
}

// listPage runs one paginated listing query and shapes the shared
// {posts, totalPages, currentPage} envelope. totalPages math always uses
// the full collection size, not the returned slice.
func (h *PostHandler) listPage(c *gin.Context, order string) {
	page, limit := pageParams(c)

	var total int64
	if err := h.db.Model(&models.Post{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	var posts []models.Post
	err := h.db.Order(order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	items := []gin.H{}
	for _, post := range posts {
		items = append(items, h.postListItem(post))
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":       items,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
	})
}

// GetPosts returns the paginated listing, newest first, with comment
// counts.
func (h *PostHandler) GetPosts(c *gin.Context) {
	h.listPage(c, "created_at desc")
}

// GetPopularPosts ranks by vote difference instead of creation time.
func (h *PostHandler) GetPopularPosts(c *gin.Context) {
	h.listPage(c, "(up_vote - down_vote) desc")
}

// SearchPosts does a case-insensitive substring match on the tag field.
// An empty keyword yields an empty result set, not all posts.
func (h *PostHandler) SearchPosts(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		c.JSON(http.StatusOK, []gin.H{})
		return
	}

	var posts []models.Post
	err := h.db.Where("LOWER(tag) LIKE ?", "%"+strings.ToLower(keyword)+"%").
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search posts"})
		return
	}

	items := []gin.H{}
	for _, post := range posts {
		items = append(items, h.postListItem(post))
	}

	c.JSON(http.StatusOK, items)
}

// GetPost returns a single post with its comments and comment count.
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.Comment
	h.db.Where("post_id = ?", post.ID).Order("created_at desc").Find(&comments)
	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            post.ID,
		"title":         post.Title,
		"body":          post.Body,
		"tag":           post.Tag,
		"author_email":  post.AuthorEmail,
		"author_name":   post.AuthorName,
		"author_image":  post.AuthorImage,
		"up_vote":       post.UpVote,
		"down_vote":     post.DownVote,
		"comments":      comments,
		"comment_count": len(comments),
		"created_at":    post.CreatedAt,
	})
}

// CreatePost creates a post with both vote counters at zero. When the
// caller did not supply an author image and the author has a profile,
// the profile photo is inherited; otherwise the image stays null.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authorImage := input.AuthorImage
	if authorImage == nil {
		var author models.User
		if err := h.db.Where("email = ?", input.AuthorEmail).First(&author).Error; err == nil && author.Photo != "" {
			authorImage = &author.Photo
		}
	}

	post := models.Post{
		Title:       input.Title,
		Body:        input.Body,
		Tag:         input.Tag,
		AuthorEmail: input.AuthorEmail,
		AuthorName:  input.AuthorName,
		AuthorImage: authorImage,
		UpVote:      0,
		DownVote:    0,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetUserPosts returns all posts by one author, newest first.
func (h *PostHandler) GetUserPosts(c *gin.Context) {
	email := c.Param("email")

	var posts []models.Post
	if err := h.db.Where("author_email = ?", email).Order("created_at desc").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user posts"})
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

// GetRecentUserPosts returns the author's latest three posts.
func (h *PostHandler) GetRecentUserPosts(c *gin.Context) {
	email := c.Param("email")

	var posts []models.Post
	err := h.db.Where("author_email = ?", email).
		Order("created_at desc").
		Limit(3).
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user posts"})
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

// CountUserPosts returns how many posts an author has written.
func (h *PostHandler) CountUserPosts(c *gin.Context) {
	email := c.Param("email")

	var count int64
	if err := h.db.Model(&models.Post{}).Where("author_email = ?", email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// DeletePost removes a post and its comments. Permitted to the post's
// author or an admin. Deleting an already-deleted post is 404.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	email, ok := middleware.UserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.AuthorEmail != email && !h.isAdmin(email) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own posts"})
		return
	}

	// Orphaned comments go with the post.
	h.db.Where("post_id = ?", post.ID).Delete(&models.Comment{})

	if err := h.db.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *PostHandler) isAdmin(email string) bool {
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		return false
	}
	return user.Role == models.RoleAdmin
}

// UpvotePost increments the up counter. There is no per-user vote ledger
// and no decrement path: repeat votes keep counting.
func (h *PostHandler) UpvotePost(c *gin.Context) {
	h.vote(c, "up_vote")
}

// DownvotePost increments the down counter.
func (h *PostHandler) DownvotePost(c *gin.Context) {
	h.vote(c, "down_vote")
}

func (h *PostHandler) vote(c *gin.Context, column string) {
	postID := c.Param("id")

	result := h.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to vote"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}
