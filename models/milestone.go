package models

import (
	"time"
)

type Milestone struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Name             string    `gorm:"unique;not null" json:"name"`
	Description      string    `json:"description"`
	ThresholdSeconds int64     `gorm:"not null" json:"threshold_seconds"`
}

// UserMilestone records a crossed individual milestone. The composite unique
// index is what makes achievement recording idempotent: a concurrent second
// insert for the same pair fails with a unique violation and is ignored.
type UserMilestone struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_milestone"`
	User          User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MilestoneID   uint      `json:"milestone_id" gorm:"not null"`
	MilestoneName string    `json:"milestone_name" gorm:"not null;uniqueIndex:idx_user_milestone"`
}
