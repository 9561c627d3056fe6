package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
	"github.com/daily-hold/plank-api/progress"
	"github.com/daily-hold/plank-api/utils"
)

type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

// GetProgress godoc
// @Summary Company challenge progress
// @Description Company-wide total, participant count, the caller's contribution and achieved company milestones
// @Tags company
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /company/progress [get]
func (cc *CompanyController) GetProgress(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var dbUser models.User
	if err := cc.DB.Preload("Company").First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var members []models.User
	if err := cc.DB.Select("id, total_plank_seconds").
		Where("company_id = ?", dbUser.CompanyID).
		Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch company members", "success": false})
		return
	}

	var companyTotal int64
	participantCount := 0
	for _, member := range members {
		if member.TotalPlankSeconds > 0 {
			participantCount++
		}
		companyTotal += member.TotalPlankSeconds
	}

	contribution := 0.0
	if companyTotal > 0 {
		contribution = float64(dbUser.TotalPlankSeconds) / float64(companyTotal) * 100
	}

	var achievements []models.CompanyMilestoneAchievement
	if err := cc.DB.Where("company_id = ?", dbUser.CompanyID).
		Order("created_at ASC").
		Find(&achievements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements", "success": false})
		return
	}

	achievedNames := make([]string, 0, len(achievements))
	for _, a := range achievements {
		achievedNames = append(achievedNames, a.MilestoneName)
	}

	response := gin.H{
		"company_name":        dbUser.Company.CompanyName,
		"company_total":       companyTotal,
		"total_formatted":     utils.FormatDuration(companyTotal),
		"participant_count":   participantCount,
		"member_count":        len(members),
		"my_contribution_pct": contribution,
		"achieved_milestones": achievedNames,
	}

	if next := progress.NextMilestone(progress.CompanyMilestones, companyTotal); next != nil {
		response["next_milestone"] = gin.H{
			"name":              next.Name,
			"emoji":             next.Emoji,
			"label":             next.Label,
			"threshold_seconds": next.Seconds,
			"remaining_seconds": next.Seconds - companyTotal,
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "progress": response})
}
