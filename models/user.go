package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Email             string         `gorm:"unique;not null" json:"email"`
	FullName          string         `gorm:"not null" json:"full_name"`
	Password          *string        `json:"-"` // Don't expose password hash in JSON
	GoogleID          *string        `gorm:"uniqueIndex" json:"-"`
	Provider          string         `gorm:"type:varchar(20);default:'email'" json:"provider"`
	CompanyID         uint           `gorm:"not null;index" json:"company_id"`
	Company           Company        `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	IsAdmin           bool           `gorm:"default:false" json:"is_admin"`
	TotalPlankSeconds int64          `gorm:"not null;default:0" json:"total_plank_seconds"`
	PlankLogs         []PlankLog     `json:"plank_logs,omitempty" gorm:"foreignKey:UserID"`
	RefreshTokens     []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
