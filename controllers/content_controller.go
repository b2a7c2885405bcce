package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/mapsearch/api-go/config"
	"github.com/mapsearch/api-go/models"
	"github.com/mapsearch/api-go/utils"
	"gorm.io/gorm"
)

// ContentController manages the three content post types. They share the
// slug workflow: derived from the title on first save, numeric suffix on
// collision, then immutable.
type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

type ContentPostRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Author        string   `json:"author"`
	Status        string   `json:"status"`
	Order         *int     `json:"order"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Image         string   `json:"image"`
	ExternalLinks []string `json:"external_links"`

	// Partner-only extras.
	ShortDescription     string `json:"short_description"`
	VideoURL             string `json:"video_url"`
	WebsiteURL           string `json:"website_url"`
	SpotlightTitle       string `json:"spotlight_title"`
	SpotlightDescription string `json:"spotlight_description"`
	ServicesTitle        string `json:"services_title"`
	ServicesDescription  string `json:"services_description"`
}

// validContentStatus checks the status enum. Only partner requests may still
// carry the legacy active/inactive aliases; NormalizeStatus maps them on save.
func validContentStatus(status string, legacyAliases bool) bool {
	switch status {
	case "", models.PostStatusDraft, models.PostStatusPublished:
		return true
	case "active", "inactive":
		return legacyAliases
	}
	return false
}

// slugFor resolves the slug for a new post. An explicitly requested slug must
// be free; otherwise the title is slugified with a numeric suffix on collision.
func (cc *ContentController) slugFor(table, title, requested string) (string, bool) {
	taken := func(slug string) bool {
		var count int64
		cc.DB.Table(table).Where("slug = ?", slug).Count(&count)
		return count > 0
	}
	if requested != "" {
		return requested, !taken(requested)
	}
	return utils.UniqueSlug(title, taken), true
}

// removeOldImage deletes a replaced image file from the media dir.
// Best-effort: a missing file or a permission problem must not fail the save.
func removeOldImage(oldImage, newImage string) {
	if oldImage == "" || oldImage == newImage {
		return
	}
	if err := os.Remove(filepath.Join(config.MediaDir(), oldImage)); err != nil {
		log.Printf("could not remove old image %s: %v", oldImage, err)
	}
}

// --- Blogs ---

func (cc *ContentController) ListBlogs(c *gin.Context) {
	var blogs []models.Blog
	err := cc.DB.Where("status = ?", models.PostStatusPublished).
		Order("display_order ASC").Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching blogs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": blogs})
}

func (cc *ContentController) GetBlogBySlug(c *gin.Context) {
	var blog models.Blog
	err := cc.DB.Where("slug = ? AND status = ?", c.Param("slug"), models.PostStatusPublished).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ?", true, true).Order("created_at ASC")
		}).
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ? AND parent_reply_id IS NULL", true, true).Order("created_at ASC")
		}).
		Preload("Comments.Replies.ChildReplies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ?", true, true).Order("created_at ASC")
		}).
		First(&blog).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

func (cc *ContentController) CreateBlog(c *gin.Context) {
	var req ContentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title is required"})
		return
	}
	if !validContentStatus(req.Status, false) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
		return
	}

	slug, ok := cc.slugFor("blogs", req.Title, req.Slug)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Slug is already in use"})
		return
	}

	blog := models.Blog{
		Title:         req.Title,
		Slug:          slug,
		Author:        req.Author,
		Status:        req.Status,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		Image:         req.Image,
		ExternalLinks: pq.StringArray(req.ExternalLinks),
	}
	if req.Order != nil {
		blog.Order = *req.Order
	}
	if blog.Status == "" {
		blog.Status = models.PostStatusDraft
	}

	if err := cc.DB.Create(&blog).Error; err != nil {
		log.Printf("failed to create blog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create blog"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "blog": blog})
}

func (cc *ContentController) UpdateBlog(c *gin.Context) {
	var blog models.Blog
	if err := cc.DB.First(&blog, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog not found"})
		return
	}

	var req ContentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if !validContentStatus(req.Status, false) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
		return
	}

	// Slug is assigned once; edits never change it.
	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Author != "" {
		blog.Author = req.Author
	}
	if req.Status != "" {
		blog.Status = req.Status
	}
	if req.Order != nil {
		blog.Order = *req.Order
	}
	if req.Content != "" {
		blog.Content = req.Content
	}
	if req.Excerpt != "" {
		blog.Excerpt = req.Excerpt
	}
	if req.ExternalLinks != nil {
		blog.ExternalLinks = pq.StringArray(req.ExternalLinks)
	}
	if req.Image != "" && req.Image != blog.Image {
		removeOldImage(blog.Image, req.Image)
		blog.Image = req.Image
	}

	if err := cc.DB.Save(&blog).Error; err != nil {
		log.Printf("failed to update blog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update blog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

// --- Partners ---

func (cc *ContentController) ListPartners(c *gin.Context) {
	var partners []models.Partner
	err := cc.DB.Where("status = ?", models.PostStatusPublished).
		Order("display_order ASC").Order("created_at DESC").
		Find(&partners).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "partners": partners})
}

func (cc *ContentController) GetPartnerBySlug(c *gin.Context) {
	var partner models.Partner
	err := cc.DB.Where("slug = ? AND status = ?", c.Param("slug"), models.PostStatusPublished).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ?", true, true).Order("created_at ASC")
		}).
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ? AND parent_reply_id IS NULL", true, true).Order("created_at ASC")
		}).
		Preload("Comments.Replies.ChildReplies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ?", true, true).Order("created_at ASC")
		}).
		First(&partner).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Partner not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "partner": partner})
}

func (cc *ContentController) CreatePartner(c *gin.Context) {
	var req ContentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title is required"})
		return
	}
	if !validContentStatus(req.Status, true) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
		return
	}

	slug, ok := cc.slugFor("partners", req.Title, req.Slug)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Slug is already in use"})
		return
	}

	partner := models.Partner{
		Title:                req.Title,
		Slug:                 slug,
		Author:               req.Author,
		Status:               req.Status,
		ShortDescription:     req.ShortDescription,
		Content:              req.Content,
		Image:                req.Image,
		VideoURL:             req.VideoURL,
		WebsiteURL:           req.WebsiteURL,
		SpotlightTitle:       req.SpotlightTitle,
		SpotlightDescription: req.SpotlightDescription,
		ServicesTitle:        req.ServicesTitle,
		ServicesDescription:  req.ServicesDescription,
		ExternalLinks:        pq.StringArray(req.ExternalLinks),
	}
	if req.Order != nil {
		partner.Order = *req.Order
	}
	if partner.Status == "" {
		partner.Status = models.PostStatusDraft
	}
	partner.NormalizeStatus()

	if err := cc.DB.Create(&partner).Error; err != nil {
		log.Printf("failed to create partner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create partner"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "partner": partner})
}

func (cc *ContentController) UpdatePartner(c *gin.Context) {
	var partner models.Partner
	if err := cc.DB.First(&partner, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Partner not found"})
		return
	}

	var req ContentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if !validContentStatus(req.Status, true) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
		return
	}

	if req.Title != "" {
		partner.Title = req.Title
	}
	if req.Author != "" {
		partner.Author = req.Author
	}
	if req.Status != "" {
		partner.Status = req.Status
	}
	if req.Order != nil {
		partner.Order = *req.Order
	}
	if req.Content != "" {
		partner.Content = req.Content
	}
	if req.ShortDescription != "" {
		partner.ShortDescription = req.ShortDescription
	}
	if req.VideoURL != "" {
		partner.VideoURL = req.VideoURL
	}
	if req.WebsiteURL != "" {
		partner.WebsiteURL = req.WebsiteURL
	}
	if req.ExternalLinks != nil {
		partner.ExternalLinks = pq.StringArray(req.ExternalLinks)
	}
	if req.Image != "" && req.Image != partner.Image {
		removeOldImage(partner.Image, req.Image)
		partner.Image = req.Image
	}
	partner.NormalizeStatus()

	if err := cc.DB.Save(&partner).Error; err != nil {
		log.Printf("failed to update partner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update partner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "partner": partner})
}

// --- About posts ---

func (cc *ContentController) ListAboutPosts(c *gin.Context) {
	var posts []models.AboutPost
	err := cc.DB.Where("status = ?", models.PostStatusPublished).
		Order("display_order ASC").Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching about posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "about_posts": posts})
}

func (cc *ContentController) GetAboutPostBySlug(c *gin.Context) {
	var post models.AboutPost
	err := cc.DB.Where("slug = ? AND status = ?", c.Param("slug"), models.PostStatusPublished).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ?", true, true).Order("created_at ASC")
		}).
		Preload("Comments.Replies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ? AND parent_reply_id IS NULL", true, true).Order("created_at ASC")
		}).
		Preload("Comments.Replies.ChildReplies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND is_approved = ?", true, true).Order("created_at ASC")
		}).
		First(&post).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "About post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "about_post": post})
}

func (cc *ContentController) CreateAboutPost(c *gin.Context) {
	var req ContentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Title is required"})
		return
	}
	if !validContentStatus(req.Status, false) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
		return
	}

	slug, ok := cc.slugFor("about_posts", req.Title, req.Slug)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Slug is already in use"})
		return
	}

	post := models.AboutPost{
		Title:         req.Title,
		Slug:          slug,
		Author:        req.Author,
		Status:        req.Status,
		Content:       req.Content,
		Image:         req.Image,
		ExternalLinks: pq.StringArray(req.ExternalLinks),
	}
	if req.Order != nil {
		post.Order = *req.Order
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}

	if err := cc.DB.Create(&post).Error; err != nil {
		log.Printf("failed to create about post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create about post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "about_post": post})
}

func (cc *ContentController) UpdateAboutPost(c *gin.Context) {
	var post models.AboutPost
	if err := cc.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "About post not found"})
		return
	}

	var req ContentPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}
	if !validContentStatus(req.Status, false) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
		return
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Author != "" {
		post.Author = req.Author
	}
	if req.Status != "" {
		post.Status = req.Status
	}
	if req.Order != nil {
		post.Order = *req.Order
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.ExternalLinks != nil {
		post.ExternalLinks = pq.StringArray(req.ExternalLinks)
	}
	if req.Image != "" && req.Image != post.Image {
		removeOldImage(post.Image, req.Image)
		post.Image = req.Image
	}

	if err := cc.DB.Save(&post).Error; err != nil {
		log.Printf("failed to update about post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update about post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "about_post": post})
}
