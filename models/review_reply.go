package models

import (
	"time"
)

// ReviewReply is a reply to a review. ParentReplyID is null for top-level
// replies; a child reply points at a top-level reply. Two levels only, the
// controller rejects replies to child replies.
type ReviewReply struct {
	ID            uint  `json:"id" gorm:"primaryKey;autoIncrement"`
	ReviewID      uint  `json:"review_id" gorm:"not null;index"`
	ParentReplyID *uint `json:"parent_reply_id" gorm:"index"`

	AuthorName  string `json:"author_name" gorm:"not null;size:100"`
	AuthorEmail string `json:"author_email"`
	ReplyText   string `json:"reply_text" gorm:"type:text;not null"`

	Likes    int `json:"likes" gorm:"not null;default:0"`
	Dislikes int `json:"dislikes" gorm:"not null;default:0"`
	Hearts   int `json:"hearts" gorm:"not null;default:0"`

	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Review       Review        `json:"-" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	ParentReply  *ReviewReply  `json:"-" gorm:"foreignKey:ParentReplyID"`
	ChildReplies []ReviewReply `json:"child_replies,omitempty" gorm:"foreignKey:ParentReplyID;constraint:OnDelete:CASCADE"`
}
