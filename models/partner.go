package models

import (
	"time"

	"github.com/lib/pq"
)

// Partner is a partner spotlight page. Older records used active/inactive as
// status values; NormalizeStatus maps those onto the draft/published workflow.
type Partner struct {
	ID               uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title            string `json:"title" gorm:"not null;size:200"`
	Slug             string `json:"slug" gorm:"uniqueIndex;not null;size:220"`
	Author           string `json:"author" gorm:"size:100"`
	Status           string `json:"status" gorm:"not null;default:'draft';size:10;index"`
	Order            int    `json:"order" gorm:"column:display_order;default:0"`
	ShortDescription string `json:"short_description" gorm:"type:text"`
	Content          string `json:"content" gorm:"type:text"`
	Image            string `json:"image"`
	VideoURL         string `json:"video_url"`
	WebsiteURL       string `json:"website_url"`

	SpotlightTitle       string `json:"spotlight_title" gorm:"size:200"`
	SpotlightDescription string `json:"spotlight_description" gorm:"type:text"`
	ServicesTitle        string `json:"services_title" gorm:"size:200"`
	ServicesDescription  string `json:"services_description" gorm:"type:text"`

	ExternalLinks pq.StringArray `json:"external_links" gorm:"type:text[]"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []PartnerComment `json:"comments,omitempty" gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
}

// NormalizeStatus converts the legacy active/inactive aliases.
func (p *Partner) NormalizeStatus() {
	switch p.Status {
	case "active":
		p.Status = PostStatusPublished
	case "inactive":
		p.Status = PostStatusDraft
	}
}

type PartnerComment struct {
	ID        uint `json:"id" gorm:"primaryKey;autoIncrement"`
	PartnerID uint `json:"partner_id" gorm:"not null;index"`

	AuthorName  string `json:"author_name" gorm:"not null;size:100"`
	AuthorEmail string `json:"author_email"`
	CommentText string `json:"comment_text" gorm:"type:text;not null"`

	Likes    int `json:"likes" gorm:"not null;default:0"`
	Dislikes int `json:"dislikes" gorm:"not null;default:0"`
	Hearts   int `json:"hearts" gorm:"not null;default:0"`

	SaveInfo   bool      `json:"save_info" gorm:"default:false"`
	IsApproved bool      `json:"is_approved" gorm:"default:true;index"`
	IsActive   bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`

	Partner Partner               `json:"-" gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
	Replies []PartnerCommentReply `json:"replies,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

type PartnerCommentReply struct {
	ID            uint  `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentID     uint  `json:"comment_id" gorm:"not null;index"`
	ParentReplyID *uint `json:"parent_reply_id" gorm:"index"`

	AuthorName  string `json:"author_name" gorm:"not null;size:100"`
	AuthorEmail string `json:"author_email"`
	ReplyText   string `json:"reply_text" gorm:"type:text;not null"`

	Likes    int `json:"likes" gorm:"not null;default:0"`
	Dislikes int `json:"dislikes" gorm:"not null;default:0"`
	Hearts   int `json:"hearts" gorm:"not null;default:0"`

	IsApproved bool      `json:"is_approved" gorm:"default:true;index"`
	IsActive   bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time `json:"updated_at"`

	Comment      PartnerComment        `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	ParentReply  *PartnerCommentReply  `json:"-" gorm:"foreignKey:ParentReplyID"`
	ChildReplies []PartnerCommentReply `json:"child_replies,omitempty" gorm:"foreignKey:ParentReplyID;constraint:OnDelete:CASCADE"`
}
