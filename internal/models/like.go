package models

import (
	"time"
)

// Like is the relation between a user and an idea. The composite unique
// index guarantees at most one row per (user, idea) pair; concurrent
// duplicate inserts are resolved by the database, not by application locking.
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_likes_user_idea" json:"user_id"`
	IdeaID    int64     `gorm:"not null;uniqueIndex:idx_likes_user_idea;index" json:"idea_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Idea Idea `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"-"`
}
