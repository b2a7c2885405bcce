package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Username  string  `gorm:"unique;not null" json:"username"`
	Email     string  `gorm:"unique;not null" json:"email"`
	Password  *string `gorm:"type:varchar(255)" json:"-"` // nil for Google-only accounts
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Bio       string  `json:"bio"`
	Location  string  `json:"location"`
	Website   string  `json:"website"`
	Avatar    string  `json:"avatar"`

	GoogleID *string `gorm:"uniqueIndex" json:"-"`
	Provider string  `gorm:"default:'email'" json:"provider"`
	IsStaff  bool    `gorm:"default:false" json:"is_staff"`

	Reviews       []Review       `json:"-" gorm:"foreignKey:UserID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
