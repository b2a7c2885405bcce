package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/config"
	"github.com/mapsearch/api-go/models"
	"github.com/mapsearch/api-go/types"
	"gorm.io/gorm"
)

type PlaceController struct {
	DB     *gorm.DB
	Places *config.PlacesClient
}

func NewPlaceController(db *gorm.DB, places *config.PlacesClient) *PlaceController {
	return &PlaceController{DB: db, Places: places}
}

// GetPlaceDetails backs the place detail page: the Google record plus the
// local review thread. An upstream failure degrades to an error-state place
// object with the reviews intact, it never turns into a 5xx.
func (pc *PlaceController) GetPlaceDetails(c *gin.Context) {
	placeID := c.Param("placeId")

	var place gin.H
	lat, lng := 0.0, 0.0

	var details *types.PlaceDetailsResult
	err := fmt.Errorf("places lookup not configured")
	if pc.Places != nil {
		details, err = pc.Places.PlaceDetails(placeID)
	}
	if err != nil {
		place = gin.H{"error": err.Error(), "name": "Error Loading Place"}
	} else {
		lat = details.Geometry.Location.Lat
		lng = details.Geometry.Location.Lng
		photos := details.Photos
		if photos == nil {
			photos = []types.Photo{}
		}
		place = gin.H{
			"place_id":           placeID,
			"name":               details.Name,
			"formatted_address":  details.FormattedAddress,
			"phone":              details.FormattedPhoneNumber,
			"website":            details.Website,
			"rating":             details.Rating,
			"user_ratings_total": details.UserRatingsTotal,
			"types":              details.Types,
			"price_level":        details.PriceLevel,
			"opening_hours":      details.OpeningHours,
			"photos":             photos,
			"business_status":    details.BusinessStatus,
			"editorial_summary":  details.EditorialSummary,
			"url":                details.URL,
			"vicinity":           details.Vicinity,
		}
	}

	var reviews []models.Review
	err = pc.DB.
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

	threads := make([]gin.H, 0, len(reviews))
	for _, review := range reviews {
		threads = append(threads, reviewThreadJSON(review))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"place":    place,
		"lat":      lat,
		"lng":      lng,
		"place_id": placeID,
		"reviews":  threads,
	})
}
