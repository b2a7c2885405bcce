package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/models"
	"gorm.io/gorm"
)

type DonationController struct {
	DB *gorm.DB
}

func NewDonationController(db *gorm.DB) *DonationController {
	return &DonationController{DB: db}
}

type SubmitDonationRequest struct {
	CampaignID     *uint  `json:"campaign_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	StreetAddress  string `json:"street_address"`
	ApartmentSuite string `json:"apartment_suite"`
	City           string `json:"city"`
	StateProvince  string `json:"state_province"`
	ZipPostalCode  string `json:"zip_postal_code"`
	Country        string `json:"country"`

	DonationAmount string   `json:"donation_amount"`
	CustomAmount   *float64 `json:"custom_amount"`
	PaymentMethod  string   `json:"payment_method"`
	ConsentGiven   bool     `json:"consent_given"`
}

func (dc *DonationController) ListCampaigns(c *gin.Context) {
	var campaigns []models.DonationCampaign
	err := dc.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&campaigns).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching campaigns"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "campaigns": campaigns})
}

func (dc *DonationController) SubmitDonation(c *gin.Context) {
	var req SubmitDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON data"})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Name is required"})
		return
	}
	if strings.TrimSpace(req.Phone) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Phone number is required"})
		return
	}

	switch req.DonationAmount {
	case "5", "10":
	case "other":
		if req.CustomAmount == nil || *req.CustomAmount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "A positive custom amount is required"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid donation amount"})
		return
	}

	switch req.PaymentMethod {
	case "stripe", "paypal":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid payment method"})
		return
	}

	if !req.ConsentGiven {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Consent is required"})
		return
	}

	// A stale or deactivated campaign id does not block the donation.
	var campaignID *uint
	if req.CampaignID != nil {
		var campaign models.DonationCampaign
		if err := dc.DB.Where("id = ? AND is_active = ?", *req.CampaignID, true).First(&campaign).Error; err == nil {
			campaignID = &campaign.ID
		}
	}

	donation := models.Donation{
		CampaignID:     campaignID,
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		StreetAddress:  req.StreetAddress,
		ApartmentSuite: req.ApartmentSuite,
		City:           req.City,
		StateProvince:  req.StateProvince,
		ZipPostalCode:  req.ZipPostalCode,
		Country:        req.Country,
		DonationAmount: req.DonationAmount,
		CustomAmount:   req.CustomAmount,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.DonationStatusPending,
		ConsentGiven:   req.ConsentGiven,
	}

	err := dc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}
		if donation.CampaignID != nil {
			return tx.Model(&models.DonationCampaign{}).
				Where("id = ?", *donation.CampaignID).
				UpdateColumn("raised_amount", gorm.Expr("raised_amount + ?", donation.FinalAmount())).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("failed to record donation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to record donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"donation_id":    donation.ID,
		"amount":         donation.FinalAmount(),
		"payment_method": donation.PaymentMethod,
		"status":         donation.Status,
		"next_step":      "payment_redirect",
	})
}
