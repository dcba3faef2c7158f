package models

import (
	"strings"
	"time"
)

type IdeaStatus string

const (
	StatusDraft     IdeaStatus = "draft"
	StatusPublished IdeaStatus = "published"
)

// NormalizeStatus falls back to draft for anything that is not a known status.
func NormalizeStatus(s string) IdeaStatus {
	switch IdeaStatus(s) {
	case StatusDraft, StatusPublished:
		return IdeaStatus(s)
	default:
		return StatusDraft
	}
}

type Idea struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64      `gorm:"not null;index" json:"user_id"`
	ProductName string     `gorm:"type:varchar(200);not null" json:"product_name"`
	Subtitle    *string    `gorm:"type:varchar(300)" json:"subtitle"`
	IdeaText    string     `gorm:"type:text;not null" json:"idea_text"`
	Tags        *string    `gorm:"type:text" json:"tags"` // comma-joined, NULL when no tags
	Status      IdeaStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IdeaView is the read-side projection of an idea: the row joined with the
// author's username, the aggregate like count and the viewer's like state.
// Like count is always recomputed from the likes relation, never stored.
type IdeaView struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	ProductName    string     `json:"product_name"`
	Subtitle       *string    `json:"subtitle"`
	IdeaText       string     `json:"idea_text"`
	Tags           *string    `json:"tags"`
	Status         IdeaStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	AuthorUsername string     `json:"author_username"`
	LikeCount      int64      `json:"like_count"`
	LikedByMe      bool       `json:"liked_by_me"`
	Mine           bool       `gorm:"-" json:"mine"`
}

// TagList splits the serialized tags back into a slice. Empty or NULL tags
// yield an empty slice.
func (v *IdeaView) TagList() []string {
	if v.Tags == nil || *v.Tags == "" {
		return []string{}
	}
	return strings.Split(*v.Tags, ",")
}
