package models

import (
	"time"
)

// SignupError is a best-effort audit row written when registration fails after
// partial side effects, so broken signups can be cleaned up by hand.
type SignupError struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Email        string    `json:"email" gorm:"not null"`
	ErrorMessage string    `json:"error_message" gorm:"not null;type:text"`
	ErrorDetails JSONMap   `json:"error_details" gorm:"type:jsonb"`
}
