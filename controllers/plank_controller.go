package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
	"github.com/daily-hold/plank-api/progress"
	"github.com/daily-hold/plank-api/utils"
)

type PlankController struct {
	DB       *gorm.DB
	Recorder *progress.Recorder
}

func NewPlankController(db *gorm.DB, recorder *progress.Recorder) *PlankController {
	return &PlankController{DB: db, Recorder: recorder}
}

type LogPlankRequest struct {
	// One hour per hold is the submission cap; the recorder itself only
	// requires a positive duration.
	DurationSeconds int `json:"durationSeconds" binding:"required,min=1,max=3600"`
}

// LogPlank godoc
// @Summary Record a plank hold
// @Description Records the duration, updates the running total and reports any milestones crossed
// @Tags planks
// @Accept json
// @Produce json
// @Param plank body LogPlankRequest true "Plank submission"
// @Success 200 {object} map[string]interface{}
// @Router /planks [post]
func (pc *PlankController) LogPlank(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req LogPlankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var dbUser models.User
	if err := pc.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	result, err := pc.Recorder.RecordPlankSession(dbUser.ID, dbUser.CompanyID, req.DurationSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record plank", "success": false})
		return
	}

	milestones := make([]gin.H, 0, len(result.Milestones))
	for _, def := range result.Milestones {
		milestones = append(milestones, gin.H{"name": def.Name, "label": def.Label, "threshold_seconds": def.Seconds})
	}
	companyMilestones := make([]gin.H, 0, len(result.CompanyMilestones))
	for _, def := range result.CompanyMilestones {
		companyMilestones = append(companyMilestones, gin.H{"name": def.Name, "emoji": def.Emoji, "label": def.Label, "threshold_seconds": def.Seconds})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"new_total":          result.NewTotal,
		"milestones":         milestones,
		"company_milestones": companyMilestones,
	})
}

func (pc *PlankController) GetRecentLogs(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	limit := 10
	var logs []models.PlankLog
	if err := pc.DB.Where("user_id = ?", user.UserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

func (pc *PlankController) GetStats(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var dbUser models.User
	if err := pc.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	total := dbUser.TotalPlankSeconds
	current := progress.CurrentMilestone(progress.Milestones, total)
	next := progress.NextMilestone(progress.Milestones, total)

	stats := gin.H{
		"total_seconds":   total,
		"total_formatted": utils.FormatDuration(total),
	}

	if current != nil {
		stats["current_milestone"] = gin.H{"name": current.Name, "label": current.Label, "threshold_seconds": current.Seconds}
	}
	if next != nil {
		var floor int64
		if current != nil {
			floor = current.Seconds
		}
		span := next.Seconds - floor
		percent := float64(total-floor) / float64(span) * 100
		if percent > 100 {
			percent = 100
		}
		stats["next_milestone"] = gin.H{"name": next.Name, "label": next.Label, "threshold_seconds": next.Seconds}
		stats["progress_percent"] = percent
	} else {
		stats["progress_percent"] = 100.0
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
