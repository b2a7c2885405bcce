package controllers

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/models"
	"github.com/mapsearch/api-go/types"
	"github.com/mapsearch/api-go/utils"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// SearchLocations runs the directory search: keyword, category, city, amenity
// and geo-radius filters applied in sequence over active locations, then one
// of the supported sort orders, then pagination. The radius filter is a
// linear haversine scan over the already-filtered candidates; fine at this
// dataset size, revisit with a spatial index if the directory grows.
func (lc *LocationController) SearchLocations(c *gin.Context) {
	var req types.LocationSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// Some listing pages are configured to pull results from the external
	// places API instead of the local directory.
	if req.Source == "google" {
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"results":           []models.Location{},
			"use_google_places": true,
		})
		return
	}

	hasPoint := req.Lat != nil && req.Lng != nil
	hasRadius := hasPoint && req.Radius != nil && *req.Radius > 0

	if req.Sort == "nearest" && !hasRadius {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "nearest sort requires lat, lng and radius"})
		return
	}
	if (req.Lat != nil) != (req.Lng != nil) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "lat and lng must be provided together"})
		return
	}
	if hasPoint {
		if err := utils.ValidateCoordinates(*req.Lat, *req.Lng); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	db := lc.DB.Model(&models.Location{}).
		Preload("Category").
		Preload("Amenities").
		Where("status = ?", models.LocationStatusActive)

	if req.Keywords != "" {
		kw := "%" + req.Keywords + "%"
		db = db.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(keywords) LIKE LOWER(?)",
			kw, kw, kw,
		)
	}

	if req.Category != "" {
		if id, err := strconv.Atoi(req.Category); err == nil {
			db = db.Where("category_id = ?", id)
		} else {
			db = db.Where(
				"category_id IN (SELECT id FROM categories WHERE LOWER(name) LIKE LOWER(?))",
				"%"+req.Category+"%",
			)
		}
	}

	if req.City != "" {
		db = db.Where("LOWER(city) LIKE LOWER(?)", "%"+req.City+"%")
	}

	// Intersection semantics: a location must carry every requested amenity.
	for _, amenityID := range req.Amenity {
		db = db.Where(
			"EXISTS (SELECT 1 FROM location_amenities la WHERE la.location_id = locations.id AND la.amenity_id = ?)",
			amenityID,
		)
	}

	if hasRadius {
		lc.searchByRadius(c, db, req)
		return
	}

	switch req.Sort {
	case "newest":
		db = db.Order("created_at DESC").Order("name ASC")
	case "name_desc":
		db = db.Order("name DESC")
	default: // "", "name_asc"
		db = db.Order("name ASC")
	}

	var total int64
	db.Count(&total)

	var locations []models.Location
	if err := db.Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching locations"})
		return
	}

	if hasPoint {
		for i := range locations {
			d := utils.HaversineDistance(*req.Lat, *req.Lng, locations[i].Latitude, locations[i].Longitude)
			locations[i].Distance = math.Round(d*100) / 100
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": locations,
		"pagination": &PaginationMeta{
			CurrentPage: req.Page,
			PageSize:    req.PageSize,
			TotalItems:  total,
			TotalPages:  int((total + int64(req.PageSize) - 1) / int64(req.PageSize)),
		},
	})
}

// searchByRadius loads every candidate still matching the other filters,
// keeps the ones within the radius and sorts/paginates in memory.
func (lc *LocationController) searchByRadius(c *gin.Context, db *gorm.DB, req types.LocationSearchRequest) {
	var candidates []models.Location
	if err := db.Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching locations"})
		return
	}

	matched := make([]models.Location, 0, len(candidates))
	for _, loc := range candidates {
		d := utils.HaversineDistance(*req.Lat, *req.Lng, loc.Latitude, loc.Longitude)
		if d <= *req.Radius {
			loc.Distance = math.Round(d*100) / 100
			matched = append(matched, loc)
		}
	}

	switch req.Sort {
	case "nearest":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Distance < matched[j].Distance })
	case "newest":
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				return matched[i].Name < matched[j].Name
			}
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	case "name_desc":
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Name > matched[j].Name })
	default:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	}

	total := len(matched)
	start := (req.Page - 1) * req.PageSize
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": matched[start:end],
		"filters": gin.H{
			"lat":    *req.Lat,
			"lng":    *req.Lng,
			"radius": *req.Radius,
		},
		"pagination": &PaginationMeta{
			CurrentPage: req.Page,
			PageSize:    req.PageSize,
			TotalItems:  int64(total),
			TotalPages:  (total + req.PageSize - 1) / req.PageSize,
		},
	})
}

// GetLocation returns one active directory entry with its category and
// amenities.
func (lc *LocationController) GetLocation(c *gin.Context) {
	id := c.Param("id")

	var location models.Location
	err := lc.DB.Preload("Category").Preload("Amenities").
		Where("id = ? AND status = ?", id, models.LocationStatusActive).
		First(&location).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Location not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "location": location, "keywords": location.KeywordsList()})
}

func (lc *LocationController) ListCategories(c *gin.Context) {
	var categories []models.Category
	if err := lc.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

func (lc *LocationController) ListAmenities(c *gin.Context) {
	var amenities []models.Amenity
	if err := lc.DB.Order("name ASC").Find(&amenities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching amenities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "amenities": amenities})
}

// Helper functions for parsing loose query parameters.
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}
