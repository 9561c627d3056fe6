package models

import (
	"time"

	"gorm.io/gorm"
)

type Company struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	CompanyName        string         `gorm:"not null" json:"company_name"`
	CompanyCode        string         `gorm:"unique;not null" json:"company_code"`
	ChallengeStartDate time.Time      `gorm:"not null" json:"challenge_start_date"`
	ChallengeEndDate   time.Time      `gorm:"not null" json:"challenge_end_date"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	Users              []User         `json:"users,omitempty" gorm:"foreignKey:CompanyID"`
}
