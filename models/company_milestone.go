package models

import (
	"time"
)

type CompanyMilestone struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Name             string    `gorm:"unique;not null" json:"name"`
	ThresholdSeconds int64     `gorm:"not null" json:"threshold_seconds"`
}

type CompanyMilestoneAchievement struct {
	ID                        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt                 time.Time `json:"created_at"`
	CompanyID                 uint      `json:"company_id" gorm:"not null;uniqueIndex:idx_company_milestone"`
	Company                   Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	MilestoneID               uint      `json:"milestone_id" gorm:"not null"`
	MilestoneName             string    `json:"milestone_name" gorm:"not null;uniqueIndex:idx_company_milestone"`
	TotalSecondsAtAchievement int64     `json:"total_seconds_at_achievement" gorm:"not null"`
}
