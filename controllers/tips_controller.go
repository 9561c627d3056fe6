package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
)

type TipsController struct {
	DB *gorm.DB
}

func NewTipsController(db *gorm.DB) *TipsController {
	return &TipsController{DB: db}
}

func (tc *TipsController) GetTips(c *gin.Context) {
	category := c.Query("category")

	db := tc.DB.Model(&models.HealthTip{})
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var tips []models.HealthTip
	if err := db.Order("id ASC").Find(&tips).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tips", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tips": tips})
}
