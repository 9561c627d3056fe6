package controllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daily-hold/plank-api/models"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

var companyCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type CompanyRequest struct {
	CompanyName        string `json:"companyName" binding:"required"`
	CompanyCode        string `json:"companyCode"`
	ChallengeStartDate string `json:"challengeStartDate" binding:"required"`
	ChallengeEndDate   string `json:"challengeEndDate" binding:"required"`
	IsActive           *bool  `json:"isActive"`
}

func parseChallengeDates(startStr, endStr string) (time.Time, time.Time, string) {
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid challenge start date"
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid challenge end date"
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, "Challenge end date must be after start date"
	}
	return start, end, ""
}

func (ac *AdminController) ListCompanies(c *gin.Context) {
	var companies []models.Company
	if err := ac.DB.Order("created_at DESC").Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch companies", "success": false})
		return
	}

	payload := make([]gin.H, 0, len(companies))
	for _, company := range companies {
		var memberCount int64
		ac.DB.Model(&models.User{}).Where("company_id = ?", company.ID).Count(&memberCount)

		var totalSeconds int64
		ac.DB.Model(&models.User{}).
			Where("company_id = ?", company.ID).
			Select("COALESCE(SUM(total_plank_seconds), 0)").
			Scan(&totalSeconds)

		payload = append(payload, gin.H{
			"company":       company,
			"member_count":  memberCount,
			"total_seconds": totalSeconds,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "companies": payload})
}

func (ac *AdminController) CreateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	code := strings.TrimSpace(req.CompanyCode)
	if code == "" {
		// Short random access code; uuid keeps it collision-free.
		code = strings.ToUpper(strings.Split(uuid.New().String(), "-")[0])
	} else if !companyCodePattern.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company code can only contain letters, numbers, hyphens, and underscores", "success": false})
		return
	}

	start, end, validationErr := parseChallengeDates(req.ChallengeStartDate, req.ChallengeEndDate)
	if validationErr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr, "success": false})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	company := models.Company{
		CompanyName:        strings.TrimSpace(req.CompanyName),
		CompanyCode:        code,
		ChallengeStartDate: start,
		ChallengeEndDate:   end,
		IsActive:           isActive,
	}

	if err := ac.DB.Create(&company).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company code already exists", "success": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "company": company})
}

func (ac *AdminController) UpdateCompany(c *gin.Context) {
	var company models.Company
	if err := ac.DB.First(&company, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found", "success": false})
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	code := strings.TrimSpace(req.CompanyCode)
	if code == "" {
		code = company.CompanyCode
	} else if !companyCodePattern.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company code can only contain letters, numbers, hyphens, and underscores", "success": false})
		return
	}

	start, end, validationErr := parseChallengeDates(req.ChallengeStartDate, req.ChallengeEndDate)
	if validationErr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr, "success": false})
		return
	}

	updates := map[string]interface{}{
		"company_name":         strings.TrimSpace(req.CompanyName),
		"company_code":         code,
		"challenge_start_date": start,
		"challenge_end_date":   end,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := ac.DB.Model(&company).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

func (ac *AdminController) DeactivateCompany(c *gin.Context) {
	var company models.Company
	if err := ac.DB.First(&company, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found", "success": false})
		return
	}

	if err := ac.DB.Model(&company).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate company", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Company deactivated"})
}

type AdminUserQuery struct {
	CompanyID uint `form:"companyId"`
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	var query AdminUserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	db := ac.DB.Model(&models.User{}).Preload("Company")
	if query.CompanyID != 0 {
		db = db.Where("company_id = ?", query.CompanyID)
	}

	var users []models.User
	if err := db.Order("total_plank_seconds DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users", "success": false})
		return
	}

	payload := make([]gin.H, 0, len(users))
	for _, user := range users {
		var logCount int64
		ac.DB.Model(&models.PlankLog{}).Where("user_id = ?", user.ID).Count(&logCount)

		payload = append(payload, gin.H{
			"id":                  user.ID,
			"email":               user.Email,
			"full_name":           user.FullName,
			"company_id":          user.CompanyID,
			"company_name":        user.Company.CompanyName,
			"is_admin":            user.IsAdmin,
			"total_plank_seconds": user.TotalPlankSeconds,
			"log_count":           logCount,
			"created_at":          user.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": payload})
}

// ReassignUserCompany moves a user to another company. Their past activity
// feed entries stay with the old company.
func (ac *AdminController) ReassignUserCompany(c *gin.Context) {
	var user models.User
	if err := ac.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var input struct {
		CompanyID uint `json:"companyId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var company models.Company
	if err := ac.DB.First(&company, input.CompanyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found", "success": false})
		return
	}

	if err := ac.DB.Model(&user).Update("company_id", company.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reassign user", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User reassigned"})
}

func (ac *AdminController) SetAdminFlag(c *gin.Context) {
	var user models.User
	if err := ac.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	var input struct {
		IsAdmin *bool `json:"isAdmin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if err := ac.DB.Model(&user).Update("is_admin", *input.IsAdmin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := ac.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	if err := ac.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
