package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
	"github.com/daily-hold/plank-api/progress"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

type AnalyticsQuery struct {
	CompanyID uint `form:"companyId"`
	Days      int  `form:"days,default=7" binding:"min=1,max=90"`
}

// GetAnalytics godoc
// @Summary Challenge analytics
// @Description Daily activity over a window, milestone level distribution and top users
// @Tags admin
// @Produce json
// @Param companyId query integer false "Restrict to one company"
// @Param days query integer false "Window size in days (default: 7)"
// @Success 200 {object} map[string]interface{}
// @Router /admin/analytics [get]
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	var query AnalyticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	daily := ac.dailyActivity(query)
	distribution := ac.milestoneDistribution(query)
	topUsers := ac.topUsers(query)

	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"daily_activity":         daily,
		"milestone_distribution": distribution,
		"top_users":              topUsers,
	})
}

func (ac *AnalyticsController) dailyActivity(query AnalyticsQuery) []gin.H {
	days := make([]gin.H, 0, query.Days)
	now := time.Now()

	for i := query.Days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		dayQuery := func() *gorm.DB {
			db := ac.DB.Model(&models.PlankLog{}).
				Where("plank_logs.created_at >= ? AND plank_logs.created_at < ?", dayStart, dayEnd)
			if query.CompanyID != 0 {
				db = db.Joins("JOIN users ON users.id = plank_logs.user_id").
					Where("users.company_id = ?", query.CompanyID)
			}
			return db
		}

		var count int64
		dayQuery().Count(&count)

		var totalSeconds int64
		dayQuery().Select("COALESCE(SUM(plank_logs.duration_seconds), 0)").Scan(&totalSeconds)

		days = append(days, gin.H{
			"date":          dayStart.Format("2006-01-02"),
			"logs":          count,
			"total_seconds": totalSeconds,
		})
	}
	return days
}

// milestoneDistribution buckets users by the highest individual milestone
// their running total has passed.
func (ac *AnalyticsController) milestoneDistribution(query AnalyticsQuery) map[string]int {
	db := ac.DB.Model(&models.User{})
	if query.CompanyID != 0 {
		db = db.Where("company_id = ?", query.CompanyID)
	}

	var totals []int64
	db.Pluck("total_plank_seconds", &totals)

	distribution := map[string]int{"None": 0}
	for _, def := range progress.Milestones {
		distribution[def.Name] = 0
	}

	for _, total := range totals {
		if current := progress.CurrentMilestone(progress.Milestones, total); current != nil {
			distribution[current.Name]++
		} else {
			distribution["None"]++
		}
	}
	return distribution
}

func (ac *AnalyticsController) topUsers(query AnalyticsQuery) []gin.H {
	db := ac.DB.Model(&models.User{}).
		Select("full_name, total_plank_seconds").
		Order("total_plank_seconds DESC").
		Limit(10)
	if query.CompanyID != 0 {
		db = db.Where("company_id = ?", query.CompanyID)
	}

	var users []models.User
	db.Find(&users)

	payload := make([]gin.H, 0, len(users))
	for _, user := range users {
		payload = append(payload, gin.H{
			"full_name":           user.FullName,
			"total_plank_seconds": user.TotalPlankSeconds,
		})
	}
	return payload
}

func (ac *AnalyticsController) GetSystemStats(c *gin.Context) {
	var userCount, adminCount, logCount int64
	ac.DB.Model(&models.User{}).Count(&userCount)
	ac.DB.Model(&models.User{}).Where("is_admin = true").Count(&adminCount)
	ac.DB.Model(&models.PlankLog{}).Count(&logCount)

	var totalSeconds int64
	ac.DB.Model(&models.PlankLog{}).
		Select("COALESCE(SUM(duration_seconds), 0)").
		Scan(&totalSeconds)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	var logsToday, logsThisWeek int64
	ac.DB.Model(&models.PlankLog{}).Where("created_at >= ?", today).Count(&logsToday)
	ac.DB.Model(&models.PlankLog{}).Where("created_at >= ?", weekAgo).Count(&logsThisWeek)

	var companyCount, activeCompanyCount int64
	ac.DB.Model(&models.Company{}).Count(&companyCount)
	ac.DB.Model(&models.Company{}).Where("is_active = true").Count(&activeCompanyCount)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_users":      userCount,
			"admin_users":      adminCount,
			"total_logs":       logCount,
			"total_seconds":    totalSeconds,
			"logs_today":       logsToday,
			"logs_this_week":   logsThisWeek,
			"total_companies":  companyCount,
			"active_companies": activeCompanyCount,
		},
	})
}
