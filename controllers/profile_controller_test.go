package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mapsearch/api-go/models"
)

func TestGetMyReviewsStats(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 3, "jo", "jo@example.com")

	mine := models.Review{
		PlaceID: "place-1", AuthorName: "jo", AuthorEmail: "jo@example.com",
		QualityRating: 5, LocationRating: 4, ServiceRating: 3, PriceRating: 4,
		ReviewText: "mine", Likes: 2, Hearts: 1, IsActive: true,
	}
	other := models.Review{
		PlaceID: "place-2", AuthorName: "sam", AuthorEmail: "sam@example.com",
		QualityRating: 1, LocationRating: 1, ServiceRating: 1, PriceRating: 1,
		ReviewText: "not mine", IsActive: true,
	}
	db.Create(&mine)
	db.Create(&other)

	resp := doRequest(r, http.MethodGet, "/api/profile/reviews", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	reviews := body["reviews"].([]interface{})
	if len(reviews) != 1 {
		t.Fatalf("expected only own reviews, got %d", len(reviews))
	}
	stats := body["stats"].(map[string]interface{})
	if stats["total_reviews"].(float64) != 1 {
		t.Fatalf("expected 1 total review, got %v", stats["total_reviews"])
	}
	if stats["average_rating"].(float64) != 4.0 {
		t.Fatalf("expected average 4.0, got %v", stats["average_rating"])
	}
	if stats["total_likes"].(float64) != 2 || stats["total_hearts"].(float64) != 1 {
		t.Fatalf("unexpected engagement totals: %v", stats)
	}

	// No token.
	resp = doRequest(r, http.MethodGet, "/api/profile/reviews", nil, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
}

func TestDeleteMyReviewOwnership(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 3, "jo", "jo@example.com")

	mine := models.Review{PlaceID: "place-1", AuthorName: "jo", AuthorEmail: "jo@example.com", ReviewText: "mine", IsActive: true}
	other := models.Review{PlaceID: "place-2", AuthorName: "sam", AuthorEmail: "sam@example.com", ReviewText: "not mine", IsActive: true}
	db.Create(&mine)
	db.Create(&other)

	// Someone else's review is invisible to the delete endpoint.
	resp := doRequest(r, http.MethodDelete, fmt.Sprintf("/api/profile/reviews/%d", other.ID), nil, token)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign review, got %d", resp.Code)
	}

	resp = doRequest(r, http.MethodDelete, fmt.Sprintf("/api/profile/reviews/%d", mine.ID), nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var count int64
	db.Model(&models.Review{}).Where("id = ?", mine.ID).Count(&count)
	if count != 0 {
		t.Fatalf("expected hard delete, review still present")
	}
}
