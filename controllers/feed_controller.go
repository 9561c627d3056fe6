package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
	"github.com/daily-hold/plank-api/utils"
)

type FeedController struct {
	DB *gorm.DB
}

type FeedQuery struct {
	Page         int    `form:"page,default=1" binding:"min=1"`
	PageSize     int    `form:"pageSize,default=20" binding:"min=1,max=50"`
	ActivityType string `form:"activityType" binding:"omitempty,oneof=plank_logged milestone_achieved company_milestone_achieved"`
}

func NewFeedController(db *gorm.DB) *FeedController {
	return &FeedController{DB: db}
}

// GetActivityFeed godoc
// @Summary Get the company activity feed
// @Description Returns the caller's company feed, newest first
// @Tags feed
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 20, max: 50)"
// @Param activityType query string false "Filter by activity type"
// @Success 200 {object} map[string]interface{}
// @Router /feed [get]
func (fc *FeedController) GetActivityFeed(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var dbUser models.User
	if err := fc.DB.First(&dbUser, user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	db := fc.DB.Model(&models.ActivityFeedEntry{}).
		Where("company_id = ?", dbUser.CompanyID)

	if query.ActivityType != "" {
		db = db.Where("activity_type = ?", query.ActivityType)
	}

	var totalItems int64
	if err := db.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count feed entries"})
		return
	}

	var entries []models.ActivityFeedEntry
	offset := (query.Page - 1) * query.PageSize
	if err := db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, full_name")
	}).
		Order("created_at DESC").
		Offset(offset).
		Limit(query.PageSize).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    entries,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  totalItems,
			TotalPages:  int(math.Ceil(float64(totalItems) / float64(query.PageSize))),
		},
	})
}
