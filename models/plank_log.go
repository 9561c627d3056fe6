package models

import (
	"time"
)

// PlankLog rows are written once and never mutated; admin moderation is the only
// path that removes them.
type PlankLog struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	User            User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DurationSeconds int       `json:"duration_seconds" gorm:"not null"`
}
