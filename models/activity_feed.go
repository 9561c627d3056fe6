package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONMap maps a jsonb column onto a plain map for feed entry metadata.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", value)
	}
	return json.Unmarshal(data, m)
}

// ActivityFeedEntry is append-only; every company member sees the same feed.
type ActivityFeedEntry struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	CompanyID    uint      `json:"company_id" gorm:"not null;index"`
	UserID       uint      `json:"user_id" gorm:"not null"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ActivityType string    `json:"activity_type" gorm:"not null;type:varchar(50)"` // "plank_logged", "milestone_achieved", "company_milestone_achieved"
	Message      string    `json:"message" gorm:"not null;type:text"`
	Metadata     JSONMap   `json:"metadata" gorm:"type:jsonb"`
}
