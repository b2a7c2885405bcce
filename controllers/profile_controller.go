package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/models"
	"github.com/mapsearch/api-go/utils"
	"gorm.io/gorm"
)

// ProfileController serves the signed-in user's contribution pages.
// Review ownership is tied to the author email recorded on the review, so
// contributions made before the account was created still show up.
type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

func (pc *ProfileController) GetMyReviews(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var reviews []models.Review
	err := pc.DB.Where("author_email = ? AND is_active = ?", user.Email, true).
		Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching reviews"})
		return
	}

	var ratingSum float64
	totalLikes, totalDislikes, totalHearts := 0, 0, 0
	out := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		ratingSum += review.AverageRating()
		totalLikes += review.Likes
		totalDislikes += review.Dislikes
		totalHearts += review.Hearts
		out = append(out, reviewThreadJSON(review))
	}

	var averageRating float64
	if len(reviews) > 0 {
		averageRating = ratingSum / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": out,
		"stats": gin.H{
			"total_reviews":  len(reviews),
			"average_rating": averageRating,
			"total_likes":    totalLikes,
			"total_dislikes": totalDislikes,
			"total_hearts":   totalHearts,
		},
	})
}

func (pc *ProfileController) GetMyReplies(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var replies []models.ReviewReply
	err := pc.DB.Where("author_email = ? AND is_active = ?", user.Email, true).
		Order("created_at DESC").Find(&replies).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching replies"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "replies": replies})
}

func (pc *ProfileController) ListFavorites(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var favorites []models.FavoritePlace
	err := pc.DB.Where("user_id = ?", user.UserID).Order("created_at DESC").Find(&favorites).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": favorites})
}

// DeleteMyReview hard-deletes one of the user's own reviews. Replies go with
// it through the cascade on the foreign key.
func (pc *ProfileController) DeleteMyReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var review models.Review
	if err := pc.DB.Where("id = ? AND author_email = ?", c.Param("id"), user.Email).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
		return
	}

	if err := pc.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted successfully"})
}
