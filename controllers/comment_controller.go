package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/models"
	"gorm.io/gorm"
)

// CommentController handles comments and replies on content posts. Blog and
// partner submission routes sit behind the auth middleware; about posts
// accept anonymous authors the same way reviews do.
type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

type SubmitCommentRequest struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	CommentText string `json:"comment_text"`
	SaveInfo    bool   `json:"save_info"`
}

type SubmitCommentReplyRequest struct {
	CommentID     uint   `json:"comment_id"`
	ParentReplyID *uint  `json:"parent_reply_id"`
	AuthorName    string `json:"author_name"`
	AuthorEmail   string `json:"author_email"`
	ReplyText     string `json:"reply_text"`
}

type CommentEngagementRequest struct {
	PostType  string `json:"post_type"`
	CommentID uint   `json:"comment_id"`
	ReplyID   uint   `json:"reply_id"`
	Action    string `json:"action"`
	Toggle    bool   `json:"toggle"`
}

func (cm *CommentController) validateComment(c *gin.Context, req *SubmitCommentRequest) bool {
	name, email, errMsg := resolveAuthor(c, req.AuthorName, req.AuthorEmail)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errMsg})
		return false
	}
	req.AuthorName = name
	req.AuthorEmail = email
	if strings.TrimSpace(req.CommentText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Comment text is required"})
		return false
	}
	return true
}

func (cm *CommentController) validateReply(c *gin.Context, req *SubmitCommentReplyRequest) bool {
	if req.CommentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Comment ID is required"})
		return false
	}
	name, email, errMsg := resolveAuthor(c, req.AuthorName, req.AuthorEmail)
	if errMsg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errMsg})
		return false
	}
	req.AuthorName = name
	req.AuthorEmail = email
	if strings.TrimSpace(req.ReplyText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Reply text is required"})
		return false
	}
	return true
}

// --- Blog comments ---

func (cm *CommentController) SubmitBlogComment(c *gin.Context) {
	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	var blog models.Blog
	if err := cm.DB.Where("id = ? AND status = ?", c.Param("id"), models.PostStatusPublished).First(&blog).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog not found"})
		return
	}
	if !cm.validateComment(c, &req) {
		return
	}

	comment := models.BlogComment{
		BlogID:      blog.ID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		CommentText: strings.TrimSpace(req.CommentText),
		SaveInfo:    req.SaveInfo,
		IsApproved:  true,
		IsActive:    true,
	}
	if err := cm.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

func (cm *CommentController) SubmitBlogCommentReply(c *gin.Context) {
	var req SubmitCommentReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if !cm.validateReply(c, &req) {
		return
	}

	var comment models.BlogComment
	if err := cm.DB.Where("id = ? AND is_active = ?", req.CommentID, true).First(&comment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Comment not found"})
		return
	}

	if req.ParentReplyID != nil {
		var parent models.BlogCommentReply
		err := cm.DB.Where("id = ? AND comment_id = ? AND is_active = ?", *req.ParentReplyID, comment.ID, true).First(&parent).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Parent reply not found"})
			return
		}
		if parent.ParentReplyID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cannot reply to a nested reply"})
			return
		}
	}

	reply := models.BlogCommentReply{
		CommentID:     comment.ID,
		ParentReplyID: req.ParentReplyID,
		AuthorName:    req.AuthorName,
		AuthorEmail:   req.AuthorEmail,
		ReplyText:     strings.TrimSpace(req.ReplyText),
		IsApproved:    true,
		IsActive:      true,
	}
	if err := cm.DB.Create(&reply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit reply"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "reply": reply})
}

// --- Partner comments ---

func (cm *CommentController) SubmitPartnerComment(c *gin.Context) {
	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	var partner models.Partner
	if err := cm.DB.Where("id = ? AND status = ?", c.Param("id"), models.PostStatusPublished).First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Partner not found"})
		return
	}
	if !cm.validateComment(c, &req) {
		return
	}

	comment := models.PartnerComment{
		PartnerID:   partner.ID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		CommentText: strings.TrimSpace(req.CommentText),
		SaveInfo:    req.SaveInfo,
		IsApproved:  true,
		IsActive:    true,
	}
	if err := cm.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

func (cm *CommentController) SubmitPartnerCommentReply(c *gin.Context) {
	var req SubmitCommentReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if !cm.validateReply(c, &req) {
		return
	}

	var comment models.PartnerComment
	if err := cm.DB.Where("id = ? AND is_active = ?", req.CommentID, true).First(&comment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Comment not found"})
		return
	}

	if req.ParentReplyID != nil {
		var parent models.PartnerCommentReply
		err := cm.DB.Where("id = ? AND comment_id = ? AND is_active = ?", *req.ParentReplyID, comment.ID, true).First(&parent).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Parent reply not found"})
			return
		}
		if parent.ParentReplyID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cannot reply to a nested reply"})
			return
		}
	}

	reply := models.PartnerCommentReply{
		CommentID:     comment.ID,
		ParentReplyID: req.ParentReplyID,
		AuthorName:    req.AuthorName,
		AuthorEmail:   req.AuthorEmail,
		ReplyText:     strings.TrimSpace(req.ReplyText),
		IsApproved:    true,
		IsActive:      true,
	}
	if err := cm.DB.Create(&reply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit reply"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "reply": reply})
}

// --- About comments ---

func (cm *CommentController) SubmitAboutComment(c *gin.Context) {
	var req SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	var post models.AboutPost
	if err := cm.DB.Where("id = ? AND status = ?", c.Param("id"), models.PostStatusPublished).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "About post not found"})
		return
	}
	if !cm.validateComment(c, &req) {
		return
	}

	comment := models.AboutComment{
		AboutPostID: post.ID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		CommentText: strings.TrimSpace(req.CommentText),
		SaveInfo:    req.SaveInfo,
		IsApproved:  true,
		IsActive:    true,
	}
	if err := cm.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit comment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

func (cm *CommentController) SubmitAboutCommentReply(c *gin.Context) {
	var req SubmitCommentReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if !cm.validateReply(c, &req) {
		return
	}

	var comment models.AboutComment
	if err := cm.DB.Where("id = ? AND is_active = ?", req.CommentID, true).First(&comment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Comment not found"})
		return
	}

	if req.ParentReplyID != nil {
		var parent models.AboutCommentReply
		err := cm.DB.Where("id = ? AND comment_id = ? AND is_active = ?", *req.ParentReplyID, comment.ID, true).First(&parent).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Parent reply not found"})
			return
		}
		if parent.ParentReplyID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cannot reply to a nested reply"})
			return
		}
	}

	reply := models.AboutCommentReply{
		CommentID:     comment.ID,
		ParentReplyID: req.ParentReplyID,
		AuthorName:    req.AuthorName,
		AuthorEmail:   req.AuthorEmail,
		ReplyText:     strings.TrimSpace(req.ReplyText),
		IsApproved:    true,
		IsActive:      true,
	}
	if err := cm.DB.Create(&reply).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit reply"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "reply": reply})
}

// UpdateEngagement toggles a like/dislike/heart counter on a post comment or
// reply. The row is re-read after the update so the response carries the
// fresh counters.
func (cm *CommentController) UpdateEngagement(c *gin.Context) {
	var req CommentEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	column, ok := engagementColumns[req.Action]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action type"})
		return
	}
	if req.CommentID == 0 && req.ReplyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Comment ID or Reply ID is required"})
		return
	}

	var model interface{}
	if req.ReplyID != 0 {
		switch req.PostType {
		case "blog":
			model = &models.BlogCommentReply{}
		case "partner":
			model = &models.PartnerCommentReply{}
		case "about":
			model = &models.AboutCommentReply{}
		}
	} else {
		switch req.PostType {
		case "blog":
			model = &models.BlogComment{}
		case "partner":
			model = &models.PartnerComment{}
		case "about":
			model = &models.AboutComment{}
		}
	}
	if model == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid post type"})
		return
	}

	id := req.CommentID
	if req.ReplyID != 0 {
		id = req.ReplyID
	}

	var count int64
	if err := cm.DB.Model(model).Where("id = ? AND is_active = ?", id, true).Count(&count).Error; err != nil || count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Comment not found"})
		return
	}

	if err := applyEngagement(cm.DB, model, id, column, req.Toggle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update engagement"})
		return
	}

	var counters struct {
		Likes    int `json:"likes"`
		Dislikes int `json:"dislikes"`
		Hearts   int `json:"hearts"`
	}
	if err := cm.DB.Model(model).Where("id = ?", id).Select("likes", "dislikes", "hearts").Scan(&counters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update engagement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"likes":     counters.Likes,
		"dislikes":  counters.Dislikes,
		"hearts":    counters.Hearts,
		"is_active": !req.Toggle,
	})
}
