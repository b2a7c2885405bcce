package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

const (
	LocationStatusActive   = "active"
	LocationStatusInactive = "inactive"
)

// Location is a place in the local directory. Deleting a category leaves its
// locations in place with a null category.
type Location struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"not null;size:200;index"`
	CategoryID *uint     `json:"category_id" gorm:"index"`
	Category   *Category `json:"category" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Latitude   float64   `json:"latitude" gorm:"not null;type:decimal(9,6);index:idx_locations_coords"`
	Longitude  float64   `json:"longitude" gorm:"not null;type:decimal(9,6);index:idx_locations_coords"`
	Keywords   string    `json:"keywords" gorm:"type:text"` // comma-separated search terms
	Status     string    `json:"status" gorm:"not null;default:'active';size:10;index"`

	Address string `json:"address"`
	City    string `json:"city" gorm:"size:100;index"`

	Description      string `json:"description" gorm:"type:text"`
	WhatWeLookingFor string `json:"what_we_looking_for" gorm:"type:text"`
	WhyThisMatters   string `json:"why_this_matters" gorm:"type:text"`
	HowToApply       string `json:"how_to_apply" gorm:"type:text"`
	Email            string `json:"email"`
	Website          string `json:"website"`
	VideoURL         string `json:"video_url"`

	SocialFacebook  string `json:"social_facebook"`
	SocialTwitter   string `json:"social_twitter"`
	SocialPinterest string `json:"social_pinterest"`

	Photos    pq.StringArray `json:"photos" gorm:"type:text[]"`
	Amenities []Amenity      `json:"amenities" gorm:"many2many:location_amenities"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Populated by geo searches, never stored.
	Distance float64 `json:"distance,omitempty" gorm:"-"`
}

// KeywordsList splits the comma-separated keywords field.
func (l *Location) KeywordsList() []string {
	if l.Keywords == "" {
		return nil
	}
	var out []string
	for _, k := range strings.Split(l.Keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
