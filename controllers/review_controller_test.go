package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mapsearch/api-go/models"
)

func TestSubmitReviewValidation(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	// Missing place id.
	resp := doRequest(r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"author_name":  "Jo",
		"author_email": "jo@example.com",
		"review_text":  "Nice place",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without place_id, got %d", resp.Code)
	}

	// Anonymous caller without a name.
	resp = doRequest(r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"place_id":    "place-1",
		"review_text": "Nice place",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without author name, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != "Name is required" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	// Rating out of range.
	resp = doRequest(r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"place_id":       "place-1",
		"author_name":    "Jo",
		"author_email":   "jo@example.com",
		"review_text":    "Nice place",
		"quality_rating": 6,
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range rating, got %d", resp.Code)
	}
}

func TestReviewThreadFlow(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	// Submit a review with mixed ratings.
	resp := doRequest(r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"place_id":        "place-1",
		"place_name":      "Corner Cafe",
		"author_name":     "Jo",
		"author_email":    "jo@example.com",
		"review_text":     "Great coffee",
		"quality_rating":  5,
		"location_rating": 4,
		"service_rating":  3,
		"price_rating":    4,
	}, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	review := body["review"].(map[string]interface{})
	if review["average_rating"].(float64) != 4.0 {
		t.Fatalf("expected average 4.0, got %v", review["average_rating"])
	}
	reviewID := uint(body["review_id"].(float64))

	// Top-level reply.
	resp = doRequest(r, http.MethodPost, "/api/reviews/replies", map[string]interface{}{
		"review_id":    reviewID,
		"author_name":  "Sam",
		"author_email": "sam@example.com",
		"reply_text":   "Agreed",
	}, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for reply, got %d: %s", resp.Code, resp.Body.String())
	}
	replyID := uint(decodeBody(t, resp)["reply"].(map[string]interface{})["id"].(float64))

	// Nested reply under the top-level one.
	resp = doRequest(r, http.MethodPost, "/api/reviews/replies", map[string]interface{}{
		"review_id":       reviewID,
		"parent_reply_id": replyID,
		"author_name":     "Kim",
		"author_email":    "kim@example.com",
		"reply_text":      "Me too",
	}, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for nested reply, got %d: %s", resp.Code, resp.Body.String())
	}
	nestedID := uint(decodeBody(t, resp)["reply"].(map[string]interface{})["id"].(float64))

	// A third level is rejected.
	resp = doRequest(r, http.MethodPost, "/api/reviews/replies", map[string]interface{}{
		"review_id":       reviewID,
		"parent_reply_id": nestedID,
		"author_name":     "Lee",
		"author_email":    "lee@example.com",
		"reply_text":      "Too deep",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for third-level reply, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["error"] != "Cannot reply to a nested reply" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}

	// Parent from a different review is a 404.
	other := models.Review{PlaceID: "place-2", AuthorName: "X", AuthorEmail: "x@example.com", ReviewText: "ok", IsActive: true}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to seed review: %v", err)
	}
	resp = doRequest(r, http.MethodPost, "/api/reviews/replies", map[string]interface{}{
		"review_id":       other.ID,
		"parent_reply_id": replyID,
		"author_name":     "Lee",
		"author_email":    "lee@example.com",
		"reply_text":      "Wrong thread",
	}, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-review parent, got %d", resp.Code)
	}

	// Thread fetch returns the review with its nested replies.
	resp = doRequest(r, http.MethodGet, "/api/reviews/place/place-1", nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	reviews := decodeBody(t, resp)["reviews"].([]interface{})
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	replies := reviews[0].(map[string]interface{})["replies"].([]interface{})
	if len(replies) != 1 {
		t.Fatalf("expected 1 top-level reply, got %d", len(replies))
	}
	children := replies[0].(map[string]interface{})["child_replies"].([]interface{})
	if len(children) != 1 {
		t.Fatalf("expected 1 child reply, got %d", len(children))
	}
}

func TestAuthenticatedReviewUsesAccountIdentity(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 42, "traveler", "traveler@example.com")

	resp := doRequest(r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"place_id":    "place-1",
		"place_name":  "Corner Cafe",
		"review_text": "Lovely",
	}, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	review := decodeBody(t, resp)["review"].(map[string]interface{})
	if review["author_name"] != "traveler" {
		t.Fatalf("expected account username as author, got %v", review["author_name"])
	}

	var stored models.Review
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("review not stored: %v", err)
	}
	if stored.AuthorEmail != "traveler@example.com" {
		t.Fatalf("expected account email, got %q", stored.AuthorEmail)
	}
	if stored.UserID == nil || *stored.UserID != 42 {
		t.Fatalf("expected user id 42, got %v", stored.UserID)
	}
}

func TestEngagementToggleAndClamp(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	review := models.Review{PlaceID: "place-1", AuthorName: "Jo", AuthorEmail: "jo@example.com", ReviewText: "ok", IsActive: true}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("failed to seed review: %v", err)
	}

	heart := func(toggle bool) map[string]interface{} {
		resp := doRequest(r, http.MethodPost, "/api/reviews/engagement", map[string]interface{}{
			"review_id": review.ID,
			"action":    "heart",
			"toggle":    toggle,
		}, "")
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
		}
		return decodeBody(t, resp)
	}

	body := heart(false)
	if body["hearts"].(float64) != 1 {
		t.Fatalf("expected 1 heart, got %v", body["hearts"])
	}
	if body["is_active"] != true {
		t.Fatalf("expected is_active true after adding, got %v", body["is_active"])
	}

	// Three removals against a single heart: the counter stays at zero.
	for i := 0; i < 3; i++ {
		body = heart(true)
	}
	if body["hearts"].(float64) != 0 {
		t.Fatalf("expected hearts clamped at 0, got %v", body["hearts"])
	}
	if body["is_active"] != false {
		t.Fatalf("expected is_active false after removing, got %v", body["is_active"])
	}

	// Unknown action.
	resp := doRequest(r, http.MethodPost, "/api/reviews/engagement", map[string]interface{}{
		"review_id": review.ID,
		"action":    "star",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d", resp.Code)
	}
}

func TestHeartRecordsFavoriteForAccount(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)
	token := signTestToken(t, 7, "fan", "fan@example.com")

	review := models.Review{PlaceID: "place-9", PlaceName: "Harbor View", AuthorName: "Jo", AuthorEmail: "jo@example.com", ReviewText: "ok", IsActive: true}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("failed to seed review: %v", err)
	}

	resp := doRequest(r, http.MethodPost, "/api/reviews/engagement", map[string]interface{}{
		"review_id": review.ID,
		"action":    "heart",
		"toggle":    false,
	}, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var favorites []models.FavoritePlace
	db.Where("user_id = ?", 7).Find(&favorites)
	if len(favorites) != 1 || favorites[0].PlaceID != "place-9" {
		t.Fatalf("expected one favorite for place-9, got %+v", favorites)
	}

	// Un-hearting removes it again.
	doRequest(r, http.MethodPost, "/api/reviews/engagement", map[string]interface{}{
		"review_id": review.ID,
		"action":    "heart",
		"toggle":    true,
	}, token)
	var count int64
	db.Model(&models.FavoritePlace{}).Where("user_id = ?", 7).Count(&count)
	if count != 0 {
		t.Fatalf("expected favorite removed, found %d", count)
	}
}

func TestUpdateText(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	review := models.Review{PlaceID: "place-1", AuthorName: "Jo", AuthorEmail: "jo@example.com", ReviewText: "draft", IsActive: true}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("failed to seed review: %v", err)
	}

	resp := doRequest(r, http.MethodPut, "/api/reviews/text", map[string]interface{}{
		"review_id": review.ID,
		"text":      "  ",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank text, got %d", resp.Code)
	}

	resp = doRequest(r, http.MethodPut, "/api/reviews/text", map[string]interface{}{
		"review_id": review.ID,
		"text":      "final version",
	}, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var stored models.Review
	db.First(&stored, review.ID)
	if stored.ReviewText != "final version" {
		t.Fatalf("expected updated text, got %q", stored.ReviewText)
	}
}

func TestContributionsPagination(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	for i := 0; i < 8; i++ {
		review := models.Review{
			PlaceID:     fmt.Sprintf("place-%d", i),
			AuthorName:  "Jo",
			AuthorEmail: "jo@example.com",
			ReviewText:  "ok",
			IsActive:    true,
		}
		if err := db.Create(&review).Error; err != nil {
			t.Fatalf("failed to seed review: %v", err)
		}
	}
	inactive := models.Review{PlaceID: "hidden", AuthorName: "Jo", AuthorEmail: "jo@example.com", ReviewText: "ok", IsActive: true}
	db.Create(&inactive)
	db.Model(&inactive).Update("is_active", false)

	resp := doRequest(r, http.MethodGet, "/api/contributions/recent", nil, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	recent := decodeBody(t, resp)["contributions"].([]interface{})
	if len(recent) != 6 {
		t.Fatalf("expected 6 recent contributions, got %d", len(recent))
	}

	resp = doRequest(r, http.MethodGet, "/api/contributions?page=2&pageSize=5", nil, "")
	body := decodeBody(t, resp)
	if got := len(body["contributions"].([]interface{})); got != 3 {
		t.Fatalf("expected 3 items on page 2, got %d", got)
	}
	pagination := body["pagination"].(map[string]interface{})
	if pagination["totalItems"].(float64) != 8 {
		t.Fatalf("expected 8 total items, got %v", pagination["totalItems"])
	}
	if pagination["totalPages"].(float64) != 2 {
		t.Fatalf("expected 2 total pages, got %v", pagination["totalPages"])
	}
}
