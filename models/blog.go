package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

type Blog struct {
	ID      uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title   string `json:"title" gorm:"not null;size:200"`
	Slug    string `json:"slug" gorm:"uniqueIndex;not null;size:220"`
	Author  string `json:"author" gorm:"size:100"`
	Status  string `json:"status" gorm:"not null;default:'draft';size:10;index"`
	Order   int    `json:"order" gorm:"column:display_order;default:0"`
	Content string `json:"content" gorm:"type:text"` // stored verbatim, rendered elsewhere
	Excerpt string `json:"excerpt" gorm:"type:text"`
	Image   string `json:"image"`

	ExternalLinks pq.StringArray `json:"external_links" gorm:"type:text[]"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`

	Comments []BlogComment `json:"comments,omitempty" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
}

type BlogComment struct {
	ID     uint `json:"id" gorm:"primaryKey;autoIncrement"`
	BlogID uint `json:"blog_id" gorm:"not null;index"`

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

	Blog    Blog               `json:"-" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	Replies []BlogCommentReply `json:"replies,omitempty" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}

type BlogCommentReply struct {
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

	Comment      BlogComment        `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
	ParentReply  *BlogCommentReply  `json:"-" gorm:"foreignKey:ParentReplyID"`
	ChildReplies []BlogCommentReply `json:"child_replies,omitempty" gorm:"foreignKey:ParentReplyID;constraint:OnDelete:CASCADE"`
}
