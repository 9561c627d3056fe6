package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
)

type ModerationController struct {
	DB *gorm.DB
}

func NewModerationController(db *gorm.DB) *ModerationController {
	return &ModerationController{DB: db}
}

type ModerationQuery struct {
	CompanyID uint `form:"companyId"`
	Limit     int  `form:"limit,default=100" binding:"min=1,max=500"`
}

func (mc *ModerationController) ListPlankLogs(c *gin.Context) {
	var query ModerationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	db := mc.DB.Model(&models.PlankLog{}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, email, company_id")
		})
	if query.CompanyID != 0 {
		db = db.Joins("JOIN users ON users.id = plank_logs.user_id").
			Where("users.company_id = ?", query.CompanyID)
	}

	var logs []models.PlankLog
	if err := db.Order("plank_logs.created_at DESC").Limit(query.Limit).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plank logs", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

// DeletePlankLog removes a suspicious log and backs its duration out of the
// owner's running total, keeping the counter near the remaining log sum.
func (mc *ModerationController) DeletePlankLog(c *gin.Context) {
	var log models.PlankLog
	if err := mc.DB.First(&log, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plank log not found", "success": false})
		return
	}

	tx := mc.DB.Begin()

	if err := tx.Delete(&log).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete plank log", "success": false})
		return
	}

	err := tx.Model(&models.User{}).
		Where("id = ?", log.UserID).
		UpdateColumn("total_plank_seconds", gorm.Expr("GREATEST(total_plank_seconds - ?, 0)", log.DurationSeconds)).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust user total", "success": false})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Plank log deleted"})
}

func (mc *ModerationController) ListCommunityPosts(c *gin.Context) {
	var query ModerationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	db := mc.DB.Model(&models.CommunityPost{}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, full_name, email")
		})
	if query.CompanyID != 0 {
		db = db.Where("company_id = ?", query.CompanyID)
	}

	var posts []models.CommunityPost
	if err := db.Order("created_at DESC").Limit(query.Limit).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

func (mc *ModerationController) DeleteCommunityPost(c *gin.Context) {
	var post models.CommunityPost
	if err := mc.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found", "success": false})
		return
	}

	tx := mc.DB.Begin()

	// Reactions first, then the post.
	if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostReaction{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reactions", "success": false})
		return
	}

	if err := tx.Delete(&post).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post", "success": false})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
}
