package models

import (
	"math"
	"time"
)

// Review is an opinion on a place identified by its external place id. The
// place does not have to exist in the local directory.
type Review struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	PlaceID   string `json:"place_id" gorm:"not null;size:255;index"`
	PlaceName string `json:"place_name" gorm:"size:200"`

	UserID      *uint  `json:"user_id" gorm:"index"`
	User        *User  `json:"-" gorm:"foreignKey:UserID"`
	AuthorName  string `json:"author_name" gorm:"not null;size:100"`
	AuthorEmail string `json:"author_email"`

	// All four ratings are on a 1-5 scale.
	QualityRating  int `json:"quality_rating" gorm:"not null;default:5"`
	LocationRating int `json:"location_rating" gorm:"not null;default:5"`
	ServiceRating  int `json:"service_rating" gorm:"not null;default:5"`
	PriceRating    int `json:"price_rating" gorm:"not null;default:5"`

	ReviewText string `json:"review_text" gorm:"type:text;not null"`

	Likes    int `json:"likes" gorm:"not null;default:0"`
	Dislikes int `json:"dislikes" gorm:"not null;default:0"`
	Hearts   int `json:"hearts" gorm:"not null;default:0"`

	SaveInfo  bool      `json:"save_info" gorm:"default:false"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Replies []ReviewReply `json:"replies,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// AverageRating is the mean of the four sub-ratings rounded half away from
// zero to one decimal place. It is always computed, never stored.
func (r *Review) AverageRating() float64 {
	sum := float64(r.QualityRating + r.LocationRating + r.ServiceRating + r.PriceRating)
	return math.Round(sum/4*10) / 10
}
