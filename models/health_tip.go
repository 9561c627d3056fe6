package models

import (
	"time"

	"github.com/lib/pq"
)

type HealthTip struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Title     string         `json:"title" gorm:"not null"`
	Body      string         `json:"body" gorm:"not null;type:text"`
	Category  string         `json:"category" gorm:"not null;type:varchar(50)"` // "form", "breathing", "recovery", "motivation"
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
}
