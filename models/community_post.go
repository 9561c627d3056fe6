package models

import (
	"time"

	"gorm.io/gorm"
)

// CommunityPost is either a text post (Content set) or a quick emoji
// (EmojiType set), never both.
type CommunityPost struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	UserID    uint           `json:"user_id" gorm:"not null"`
	User      User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CompanyID uint           `json:"company_id" gorm:"not null;index"`
	Content   *string        `json:"content" gorm:"type:text"`
	EmojiType *string        `json:"emoji_type" gorm:"type:varchar(10)"`
	Reactions []PostReaction `json:"reactions,omitempty" gorm:"foreignKey:PostID"`
}

type PostReaction struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	PostID    uint          `json:"post_id" gorm:"not null;uniqueIndex:idx_post_user_emoji"`
	Post      CommunityPost `json:"-" gorm:"foreignKey:PostID"`
	UserID    uint          `json:"user_id" gorm:"not null;uniqueIndex:idx_post_user_emoji"`
	Emoji     string        `json:"emoji" gorm:"not null;type:varchar(10);uniqueIndex:idx_post_user_emoji"`
}
