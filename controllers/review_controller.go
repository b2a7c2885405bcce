package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/config"
	"github.com/mapsearch/api-go/models"
	"github.com/mapsearch/api-go/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB     *gorm.DB
	Places *config.PlacesClient
}

func NewReviewController(db *gorm.DB, places *config.PlacesClient) *ReviewController {
	return &ReviewController{DB: db, Places: places}
}

type SubmitReviewRequest struct {
	PlaceID        string `json:"place_id"`
	PlaceName      string `json:"place_name"`
	AuthorName     string `json:"author_name"`
	AuthorEmail    string `json:"author_email"`
	ReviewText     string `json:"review_text"`
	QualityRating  *int   `json:"quality_rating"`
	LocationRating *int   `json:"location_rating"`
	ServiceRating  *int   `json:"service_rating"`
	PriceRating    *int   `json:"price_rating"`
	SaveInfo       bool   `json:"save_info"`
}

type SubmitReplyRequest struct {
	ReviewID      uint   `json:"review_id"`
	ParentReplyID *uint  `json:"parent_reply_id"`
	AuthorName    string `json:"author_name"`
	AuthorEmail   string `json:"author_email"`
	ReplyText     string `json:"reply_text"`
}

type UpdateTextRequest struct {
	ReviewID uint   `json:"review_id"`
	ReplyID  uint   `json:"reply_id"`
	Text     string `json:"text"`
}

type EngagementRequest struct {
	ReviewID uint   `json:"review_id"`
	ReplyID  uint   `json:"reply_id"`
	Action   string `json:"action"`
	Toggle   bool   `json:"toggle"`
}

func ratingOrDefault(r *int) int {
	if r == nil {
		return 5
	}
	return *r
}

// resolveAuthor fills the author fields from the logged-in account when there
// is one; anonymous callers must supply both name and email.
func resolveAuthor(c *gin.Context, name, email string) (string, string, string) {
	if user := utils.GetUser(c); user != nil {
		return user.Username, user.Email, ""
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return "", "", "Name is required"
	}
	if email == "" {
		return "", "", "Email is required"
	}
	return name, email, ""
}

// SubmitReview creates a review for an external place id. The place name is
// looked up best-effort; a failed lookup never fails the submission.
func (rc *ReviewController) SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	if req.PlaceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Place ID is required"})
		return
	}

	authorName, authorEmail, fieldErr := resolveAuthor(c, req.AuthorName, req.AuthorEmail)
	if fieldErr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fieldErr})
		return
	}

	reviewText := strings.TrimSpace(req.ReviewText)
	if reviewText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Review text is required"})
		return
	}

	ratings := []int{
		ratingOrDefault(req.QualityRating),
		ratingOrDefault(req.LocationRating),
		ratingOrDefault(req.ServiceRating),
		ratingOrDefault(req.PriceRating),
	}
	for _, r := range ratings {
		if r < 1 || r > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Ratings must be between 1 and 5"})
			return
		}
	}

	placeName := req.PlaceName
	if placeName == "" && rc.Places != nil {
		placeName = rc.Places.PlaceName(req.PlaceID)
	}

	var userID *uint
	if user := utils.GetUser(c); user != nil {
		userID = &user.UserID
	}

	review := models.Review{
		PlaceID:        req.PlaceID,
		PlaceName:      placeName,
		UserID:         userID,
		AuthorName:     authorName,
		AuthorEmail:    authorEmail,
		QualityRating:  ratings[0],
		LocationRating: ratings[1],
		ServiceRating:  ratings[2],
		PriceRating:    ratings[3],
		ReviewText:     reviewText,
		SaveInfo:       req.SaveInfo,
		IsActive:       true,
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		log.Printf("failed to create review: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Review submitted successfully",
		"review_id": review.ID,
		"review": gin.H{
			"id":              review.ID,
			"author_name":     review.AuthorName,
			"review_text":     review.ReviewText,
			"quality_rating":  review.QualityRating,
			"location_rating": review.LocationRating,
			"service_rating":  review.ServiceRating,
			"price_rating":    review.PriceRating,
			"average_rating":  review.AverageRating(),
			"created_at":      review.CreatedAt,
		},
	})
}

// SubmitReply adds a reply to a review. Replying to a top-level reply nests
// one level; replying to a nested reply is rejected.
func (rc *ReviewController) SubmitReply(c *gin.Context) {
	var req SubmitReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	if req.ReviewID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Review ID is required"})
		return
	}

	authorName, authorEmail, fieldErr := resolveAuthor(c, req.AuthorName, req.AuthorEmail)
	if fieldErr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fieldErr})
		return
	}

	replyText := strings.TrimSpace(req.ReplyText)
	if replyText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Reply text is required"})
		return
	}

	var review models.Review
	if err := rc.DB.Where("id = ? AND is_active = ?", req.ReviewID, true).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
		return
	}

	var parentReplyID *uint
	if req.ParentReplyID != nil {
		var parent models.ReviewReply
		err := rc.DB.Where("id = ? AND is_active = ? AND review_id = ?", *req.ParentReplyID, true, review.ID).
			First(&parent).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Parent reply not found"})
			return
		}
		if parent.ParentReplyID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cannot reply to a nested reply"})
			return
		}
		parentReplyID = &parent.ID
	}

	reply := models.ReviewReply{
		ReviewID:      review.ID,
		ParentReplyID: parentReplyID,
		AuthorName:    authorName,
		AuthorEmail:   authorEmail,
		ReplyText:     replyText,
		IsActive:      true,
	}

	if err := rc.DB.Create(&reply).Error; err != nil {
		log.Printf("failed to create reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit reply"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reply submitted successfully",
		"reply": gin.H{
			"id":          reply.ID,
			"author_name": reply.AuthorName,
			"reply_text":  reply.ReplyText,
			"created_at":  reply.CreatedAt,
			"likes":       reply.Likes,
			"dislikes":    reply.Dislikes,
			"hearts":      reply.Hearts,
		},
	})
}

// UpdateText edits the body of a review or reply.
func (rc *ReviewController) UpdateText(c *gin.Context) {
	var req UpdateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	newText := strings.TrimSpace(req.Text)
	if newText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Text cannot be empty"})
		return
	}

	if req.ReplyID != 0 {
		var reply models.ReviewReply
		if err := rc.DB.Where("id = ? AND is_active = ?", req.ReplyID, true).First(&reply).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Reply not found"})
			return
		}
		reply.ReplyText = newText
		if err := rc.DB.Save(&reply).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update reply"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Reply updated successfully",
			"reply":   gin.H{"id": reply.ID, "text": reply.ReplyText, "updated_at": reply.UpdatedAt},
		})
		return
	}

	if req.ReviewID != 0 {
		var review models.Review
		if err := rc.DB.Where("id = ? AND is_active = ?", req.ReviewID, true).First(&review).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
			return
		}
		review.ReviewText = newText
		if err := rc.DB.Save(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update review"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Review updated successfully",
			"review":  gin.H{"id": review.ID, "text": review.ReviewText, "updated_at": review.UpdatedAt},
		})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Review ID or Reply ID is required"})
}

var engagementColumns = map[string]string{
	"like":    "likes",
	"dislike": "dislikes",
	"heart":   "hearts",
}

// applyEngagement bumps one counter on the given row as a single SQL
// statement. Decrements are guarded by the WHERE clause so concurrent
// requests can never drive a counter below zero.
func applyEngagement(db *gorm.DB, model interface{}, id uint, column string, decrement bool) error {
	q := db.Model(model)
	if decrement {
		return q.Where("id = ? AND "+column+" > 0", id).
			UpdateColumn(column, gorm.Expr(column+" - 1")).Error
	}
	return q.Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
}

// UpdateEngagement toggles a like/dislike/heart on a review or reply. The
// client is the source of truth for direction: toggle=true removes a vote,
// toggle=false adds one. The server keeps no per-user vote state, so racing
// tabs can drift the displayed state; that is the accepted trade-off here.
func (rc *ReviewController) UpdateEngagement(c *gin.Context) {
	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	if req.ReviewID == 0 && req.ReplyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Review ID or Reply ID is required"})
		return
	}

	column, ok := engagementColumns[req.Action]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid action type"})
		return
	}

	if req.ReplyID != 0 {
		var reply models.ReviewReply
		if err := rc.DB.Where("id = ? AND is_active = ?", req.ReplyID, true).First(&reply).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Reply not found"})
			return
		}
		if err := applyEngagement(rc.DB, &models.ReviewReply{}, reply.ID, column, req.Toggle); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update engagement"})
			return
		}
		rc.DB.First(&reply, reply.ID)
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"likes":     reply.Likes,
			"dislikes":  reply.Dislikes,
			"hearts":    reply.Hearts,
			"is_active": !req.Toggle,
		})
		return
	}

	var review models.Review
	if err := rc.DB.Where("id = ? AND is_active = ?", req.ReviewID, true).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
		return
	}
	if err := applyEngagement(rc.DB, &models.Review{}, review.ID, column, req.Toggle); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update engagement"})
		return
	}

	// Hearts from signed-in users double as a favorites bookmark.
	if req.Action == "heart" {
		if user := utils.GetUser(c); user != nil {
			if req.Toggle {
				rc.DB.Where("user_id = ? AND place_id = ?", user.UserID, review.PlaceID).Delete(&models.FavoritePlace{})
			} else {
				rc.DB.Where("user_id = ? AND place_id = ?", user.UserID, review.PlaceID).
					FirstOrCreate(&models.FavoritePlace{UserID: user.UserID, PlaceID: review.PlaceID, PlaceName: review.PlaceName})
			}
		}
	}

	rc.DB.First(&review, review.ID)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"likes":     review.Likes,
		"dislikes":  review.Dislikes,
		"hearts":    review.Hearts,
		"is_active": !req.Toggle,
	})
}

func reviewThreadJSON(review models.Review) gin.H {
	return gin.H{
		"id":              review.ID,
		"place_id":        review.PlaceID,
		"place_name":      review.PlaceName,
		"author_name":     review.AuthorName,
		"review_text":     review.ReviewText,
		"quality_rating":  review.QualityRating,
		"location_rating": review.LocationRating,
		"service_rating":  review.ServiceRating,
		"price_rating":    review.PriceRating,
		"average_rating":  review.AverageRating(),
		"likes":           review.Likes,
		"dislikes":        review.Dislikes,
		"hearts":          review.Hearts,
		"created_at":      review.CreatedAt,
		"replies":         review.Replies,
	}
}

// GetPlaceReviews returns the active reviews for a place, newest first, each
// with its top-level replies and their children in posting order.
func (rc *ReviewController) GetPlaceReviews(c *gin.Context) {
	placeID := c.Param("placeId")

	var reviews []models.Review
	err := rc.DB.
		Where("place_id = ? AND is_active = ?", placeID, true).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ? AND parent_reply_id IS NULL", true).Order("created_at ASC")
		}).
		Preload("Replies.ChildReplies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("created_at ASC")
		}).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching reviews"})
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, reviewThreadJSON(review))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "place_id": placeID, "reviews": out})
}

// GetRecentContributions backs the home page widget: the six most recent
// active reviews.
func (rc *ReviewController) GetRecentContributions(c *gin.Context) {
	var reviews []models.Review
	if err := rc.DB.Where("is_active = ?", true).Order("created_at DESC").Limit(6).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching contributions"})
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, reviewThreadJSON(review))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "contributions": out})
}

// GetAllContributions lists every active review, newest first, paginated.
func (rc *ReviewController) GetAllContributions(c *gin.Context) {
	page := parseInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize := parseInt(c.DefaultQuery("pageSize", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	rc.DB.Model(&models.Review{}).Where("is_active = ?", true).Count(&total)

	var reviews []models.Review
	err := rc.DB.Where("is_active = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching contributions"})
		return
	}

	out := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, reviewThreadJSON(review))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"contributions": out,
		"pagination": &PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  int((total + int64(pageSize) - 1) / int64(pageSize)),
		},
	})
}
