package controllers_test

import (
	"net/http"
	"testing"

	"github.com/mapsearch/api-go/models"
)

func validDonation() map[string]interface{} {
	return map[string]interface{}{
		"name":            "Jane Donor",
		"phone":           "+1 555 0100",
		"donation_amount": "10",
		"payment_method":  "stripe",
		"consent_given":   true,
	}
}

func TestSubmitDonationValidation(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	cases := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"missing name", func(m map[string]interface{}) { m["name"] = "" }},
		{"missing phone", func(m map[string]interface{}) { m["phone"] = "  " }},
		{"bad selector", func(m map[string]interface{}) { m["donation_amount"] = "20" }},
		{"other without custom", func(m map[string]interface{}) { m["donation_amount"] = "other" }},
		{"other with zero custom", func(m map[string]interface{}) {
			m["donation_amount"] = "other"
			m["custom_amount"] = 0
		}},
		{"bad method", func(m map[string]interface{}) { m["payment_method"] = "cash" }},
		{"no consent", func(m map[string]interface{}) { m["consent_given"] = false }},
	}

	for _, tc := range cases {
		payload := validDonation()
		tc.mutate(payload)
		resp := doRequest(r, http.MethodPost, "/api/donations", payload, "")
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, resp.Code)
		}
	}

	var count int64
	db.Model(&models.Donation{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no donations stored, got %d", count)
	}
}

func TestSubmitDonationCreatesPending(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	payload := validDonation()
	payload["donation_amount"] = "other"
	payload["custom_amount"] = 42.5

	resp := doRequest(r, http.MethodPost, "/api/donations", payload, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["amount"].(float64) != 42.5 {
		t.Fatalf("expected resolved amount 42.5, got %v", body["amount"])
	}
	if body["status"] != models.DonationStatusPending {
		t.Fatalf("expected pending status, got %v", body["status"])
	}
	if body["next_step"] != "payment_redirect" {
		t.Fatalf("expected payment redirect hint, got %v", body["next_step"])
	}
}

func TestSubmitDonationCampaignIncrement(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	campaign := models.DonationCampaign{Title: "Save the Harbor", TargetAmount: 1000, IsActive: true}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("failed to seed campaign: %v", err)
	}

	payload := validDonation()
	payload["campaign_id"] = campaign.ID

	resp := doRequest(r, http.MethodPost, "/api/donations", payload, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var stored models.DonationCampaign
	db.First(&stored, campaign.ID)
	if stored.RaisedAmount != 10 {
		t.Fatalf("expected raised amount 10, got %v", stored.RaisedAmount)
	}

	var donation models.Donation
	db.First(&donation)
	if donation.CampaignID == nil || *donation.CampaignID != campaign.ID {
		t.Fatalf("expected donation linked to campaign, got %v", donation.CampaignID)
	}
}

func TestSubmitDonationUnknownCampaignIgnored(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	payload := validDonation()
	payload["campaign_id"] = 999

	resp := doRequest(r, http.MethodPost, "/api/donations", payload, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite unknown campaign, got %d: %s", resp.Code, resp.Body.String())
	}

	var donation models.Donation
	db.First(&donation)
	if donation.CampaignID != nil {
		t.Fatalf("expected nil campaign id, got %v", *donation.CampaignID)
	}
}

func TestSubmitContactMessage(t *testing.T) {
	db := setupTestDB(t)
	r := buildTestRouter(t, db)

	resp := doRequest(r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Pat",
		"email":   "pat@example.com",
		"subject": "Hours",
		"message": "When are you open?",
	}, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var stored models.ContactMessage
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("message not stored: %v", err)
	}
	if stored.Subject != "Hours" {
		t.Fatalf("unexpected subject %q", stored.Subject)
	}

	// Required fields.
	resp = doRequest(r, http.MethodPost, "/api/contact", map[string]interface{}{
		"name": "Pat",
	}, "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.Code)
	}
}
