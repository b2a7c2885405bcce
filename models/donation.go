package models

import (
	"time"
)

const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusFailed    = "failed"
	DonationStatusCancelled = "cancelled"
)

type DonationCampaign struct {
	ID           uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string  `json:"title" gorm:"not null;size:200"`
	Description  string  `json:"description" gorm:"type:text"`
	TargetAmount float64 `json:"target_amount" gorm:"not null;type:decimal(10,2)"`
	RaisedAmount float64 `json:"raised_amount" gorm:"not null;default:0;type:decimal(10,2)"`
	IsActive     bool    `json:"is_active" gorm:"default:true;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Donations []Donation `json:"-" gorm:"foreignKey:CampaignID"`
}

type Donation struct {
	ID         uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	CampaignID *uint             `json:"campaign_id" gorm:"index"`
	Campaign   *DonationCampaign `json:"-" gorm:"foreignKey:CampaignID"`

	Name           string `json:"name" gorm:"not null;size:100"`
	Email          string `json:"email"`
	Phone          string `json:"phone" gorm:"not null;size:30"`
	StreetAddress  string `json:"street_address"`
	ApartmentSuite string `json:"apartment_suite"`
	City           string `json:"city"`
	StateProvince  string `json:"state_province"`
	ZipPostalCode  string `json:"zip_postal_code"`
	Country        string `json:"country"`

	// One of "5", "10" or "other"; CustomAmount applies only with "other".
	DonationAmount string   `json:"donation_amount" gorm:"not null;size:10"`
	CustomAmount   *float64 `json:"custom_amount" gorm:"type:decimal(10,2)"`
	PaymentMethod  string   `json:"payment_method" gorm:"not null;size:10"` // stripe or paypal
	Status         string   `json:"status" gorm:"not null;default:'pending';size:10;index"`
	ConsentGiven   bool     `json:"consent_given" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FinalAmount resolves the selector to a number. The custom amount counts
// only when the selector is "other"; an unrecognized selector resolves to 0.
func (d *Donation) FinalAmount() float64 {
	switch d.DonationAmount {
	case "5":
		return 5
	case "10":
		return 10
	case "other":
		if d.CustomAmount != nil {
			return *d.CustomAmount
		}
		return 0
	default:
		return 0
	}
}
