package models

import (
	"time"
)

// FavoritePlace records a place a signed-in user hearted. The public
// engagement counters stay anonymous; this row only exists for accounts.
type FavoritePlace struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_place"`
	PlaceID   string    `json:"place_id" gorm:"not null;size:255;uniqueIndex:idx_favorite_user_place"`
	PlaceName string    `json:"place_name"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
